// Package colormap provides linear segmented colormaps, a registry of named
// colormaps and trimming of a colormap to a sub-range of [0,1].
package colormap

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// DefaultN is the resolution given to colormaps when none is specified.
const DefaultN = 256

// Stop is a keypoint of a colormap: Colour is reached exactly at Pos.
type Stop struct {
	Pos    float64
	Colour colorful.Color
}

// Colormap maps a scalar in [0,1] to a colour by linear interpolation in sRGB
// between sorted stops. A Colormap is immutable once built.
type Colormap struct {
	name  string
	n     int
	stops []Stop
}

// New builds a colormap from stops. Stops must start at 0, end at 1 and be
// sorted by position. n is the native resolution used when sampling.
func New(name string, n int, stops []Stop) (*Colormap, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: colormap %q resolution must be positive, got %d", colour.ErrInvalidArgument, name, n)
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: colormap %q needs at least 2 stops, got %d", colour.ErrInvalidArgument, name, len(stops))
	}
	if stops[0].Pos != 0 || stops[len(stops)-1].Pos != 1 {
		return nil, fmt.Errorf("%w: colormap %q stops must span [0,1]", colour.ErrInvalidArgument, name)
	}
	for i := 1; i < len(stops); i++ {
		if !(stops[i].Pos >= stops[i-1].Pos) {
			return nil, fmt.Errorf("%w: colormap %q stop %d is out of order", colour.ErrInvalidArgument, name, i)
		}
	}

	return &Colormap{
		name:  name,
		n:     n,
		stops: append([]Stop(nil), stops...),
	}, nil
}

// FromList builds a linear segmented colormap with colours placed at evenly
// spaced positions across [0,1]. A single colour yields a constant colormap.
func FromList(name string, colours []colorful.Color, n int) (*Colormap, error) {
	switch len(colours) {
	case 0:
		return nil, fmt.Errorf("%w: colormap %q needs at least one colour", colour.ErrInvalidArgument, name)
	case 1:
		colours = []colorful.Color{colours[0], colours[0]}
	}

	stops := make([]Stop, len(colours))
	last := float64(len(colours) - 1)
	for i, c := range colours {
		stops[i] = Stop{Pos: float64(i) / last, Colour: c}
	}
	return New(name, n, stops)
}

// FromHex is FromList for colours given as "#rrggbb" strings.
func FromHex(name string, n int, hexes ...string) (*Colormap, error) {
	colours := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: colormap %q colour %d: %v", colour.ErrInvalidColorFormat, name, i, err)
		}
		colours[i] = c
	}
	return FromList(name, colours, n)
}

// Name returns the colormap name.
func (c *Colormap) Name() string {
	return c.name
}

// N returns the native resolution of the colormap.
func (c *Colormap) N() int {
	return c.n
}

// Stops returns a copy of the colormap keypoints.
func (c *Colormap) Stops() []Stop {
	return append([]Stop(nil), c.stops...)
}

// At returns the colour at x. Values outside [0,1] are clamped; NaN maps to 0.
func (c *Colormap) At(x float64) colorful.Color {
	if math.IsNaN(x) || x <= 0 {
		return c.stops[0].Colour
	}
	if x >= 1 {
		return c.stops[len(c.stops)-1].Colour
	}

	for i := 0; i < len(c.stops)-1; i++ {
		c1 := c.stops[i]
		c2 := c.stops[i+1]
		if c1.Pos <= x && x <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Colour
			}
			t := (x - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Colour.BlendRgb(c2.Colour, t).Clamped()
		}
	}

	return c.stops[len(c.stops)-1].Colour
}

// Sample evaluates the colormap at N evenly spaced points across
// [cmin, cmax], both ends included.
func (c *Colormap) Sample(cmin, cmax float64) []colorful.Color {
	samples := make([]colorful.Color, c.n)
	if c.n == 1 {
		samples[0] = c.At(cmin)
		return samples
	}

	step := (cmax - cmin) / float64(c.n-1)
	for i := range samples {
		x := cmin + float64(i)*step
		if i == c.n-1 {
			x = cmax
		}
		samples[i] = c.At(x)
	}
	return samples
}

// Reversed returns a copy of the colormap running from 1 to 0.
func (c *Colormap) Reversed(name string) *Colormap {
	stops := make([]Stop, len(c.stops))
	for i, s := range c.stops {
		stops[len(stops)-1-i] = Stop{Pos: 1 - s.Pos, Colour: s.Colour}
	}
	return &Colormap{name: name, n: c.n, stops: stops}
}

// Colours returns the colour of every stop as an RGB value.
func (c *Colormap) Colours() []colour.RGB {
	out := make([]colour.RGB, len(c.stops))
	for i, s := range c.stops {
		out[i] = ToRGB(s.Colour)
	}
	return out
}

// ToRGB converts a colorful colour to 8-bit RGB, clamping out-of-gamut values.
func ToRGB(c colorful.Color) colour.RGB {
	r, g, b := c.Clamped().RGB255()
	return colour.RGB{R: int(r), G: int(g), B: int(b)}
}
