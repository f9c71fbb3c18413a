package colormap

import (
	"errors"
	"fmt"
	"math"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// Default sub-range used by Trim callers that do not choose one.
const (
	DefaultTrimMin = 0.20
	DefaultTrimMax = 1.00
)

// TrimmedPrefix is prepended to the name of a trimmed colormap.
const TrimmedPrefix = "trimmed_"

// ErrUnknownColormap is returned when a colormap name is not in the registry.
var ErrUnknownColormap = errors.New("unknown colormap")

// Trim returns a new colormap named "trimmed_<name>" covering only
// [cmin, cmax] of the named colormap. The source is sampled at its native
// resolution and the samples become the stops of the new colormap.
func Trim(reg Registry, name string, cmin, cmax float64) (*Colormap, error) {
	if err := validateRange(cmin, cmax); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %q (no registry)", ErrUnknownColormap, name)
	}

	src, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}

	return FromList(TrimmedPrefix+name, src.Sample(cmin, cmax), src.N())
}

func validateRange(cmin, cmax float64) error {
	if math.IsNaN(cmin) || math.IsNaN(cmax) {
		return fmt.Errorf("%w: trim bounds must be numbers", colour.ErrInvalidArgument)
	}
	if cmin < 0 || cmin > 1 {
		return fmt.Errorf("%w: cmin %g outside [0,1]", colour.ErrInvalidArgument, cmin)
	}
	if cmax < 0 || cmax > 1 {
		return fmt.Errorf("%w: cmax %g outside [0,1]", colour.ErrInvalidArgument, cmax)
	}
	if cmin > cmax {
		return fmt.Errorf("%w: cmin %g greater than cmax %g", colour.ErrInvalidArgument, cmin, cmax)
	}
	return nil
}
