package colour

import "fmt"

// MaxGradientSteps is the largest number of colours Interpolate produces.
const MaxGradientSteps = 1 << 16

// Resolver normalises Color values to RGB using a name table.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	names NameTable
}

// NewResolver creates a Resolver that looks names up in names.
// A nil table disables name lookup.
func NewResolver(names NameTable) *Resolver {
	return &Resolver{names: names}
}

// Resolve converts c to RGB. RGB values are returned unchanged. Strings are
// looked up in the name table first and, when not found there, parsed as a
// hex literal.
func (r *Resolver) Resolve(c Color) (RGB, error) {
	switch v := c.(type) {
	case RGB:
		return v, nil
	case HexString:
		s := string(v)
		if r.names != nil {
			if hex, ok := r.names.Lookup(s); ok {
				rgb, err := HexToRGB(hex)
				if err != nil {
					return RGB{}, fmt.Errorf("colour name %q: %w", s, err)
				}
				return rgb, nil
			}
		}
		return HexToRGB(s)
	case nil:
		return RGB{}, fmt.Errorf("%w: nil colour", ErrInvalidColorFormat)
	default:
		return RGB{}, fmt.Errorf("%w: unsupported colour type %T", ErrInvalidColorFormat, c)
	}
}

// Interpolate returns n hex colours linearly interpolated from start to end,
// both endpoints included. Channels are truncated toward zero, so a midpoint
// of 127.5 yields 127. n must be in [2, MaxGradientSteps].
func (r *Resolver) Interpolate(start, end Color, n int) ([]string, error) {
	if n <= 1 {
		return nil, fmt.Errorf("%w: gradient needs at least 2 steps, got %d (step fraction divides by n-1)", ErrInvalidArgument, n)
	}
	if n > MaxGradientSteps {
		return nil, fmt.Errorf("%w: gradient of %d steps exceeds the limit of %d", ErrInvalidArgument, n, MaxGradientSteps)
	}

	from, err := r.Resolve(start)
	if err != nil {
		return nil, fmt.Errorf("start colour: %w", err)
	}
	to, err := r.Resolve(end)
	if err != nil {
		return nil, fmt.Errorf("end colour: %w", err)
	}

	colours := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fraction := float64(i) / float64(n-1)
		step := RGB{
			R: lerp(from.R, to.R, fraction),
			G: lerp(from.G, to.G, fraction),
			B: lerp(from.B, to.B, fraction),
		}
		hex, err := RGBToHex(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		colours = append(colours, hex)
	}
	return colours, nil
}

// lerp truncates toward zero, matching an integer cast.
func lerp(a, b int, fraction float64) int {
	return int(float64(a) + float64(b-a)*fraction)
}
