package colormap

import (
	"encoding/json"
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// StopJSON represents a colormap stop in JSON output format.
type StopJSON struct {
	Pos float64    `json:"pos"`
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// ColormapJSON represents a colormap in JSON format.
type ColormapJSON struct {
	Name  string     `json:"name"`
	N     int        `json:"n"`
	Stops []StopJSON `json:"stops"`
}

// MarshalJSON encodes the colormap with its stops as CSS hex colours.
func (c *Colormap) MarshalJSON() ([]byte, error) {
	out := ColormapJSON{
		Name:  c.name,
		N:     c.n,
		Stops: make([]StopJSON, len(c.stops)),
	}
	for i, s := range c.stops {
		rgb := ToRGB(s.Colour)
		out.Stops[i] = StopJSON{Pos: s.Pos, Hex: colour.CSSHex(rgb), RGB: rgb}
	}
	return json.Marshal(out)
}

// Encode writes the colormap to w as indented JSON.
func Encode(w io.Writer, c *Colormap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode colormap %q: %w", c.name, err)
	}
	return nil
}

// Decode reads a colormap written by Encode. Stop colours are taken from the
// hex field.
func Decode(r io.Reader) (*Colormap, error) {
	var in ColormapJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to decode colormap: %w", err)
	}

	stops := make([]Stop, len(in.Stops))
	for i, s := range in.Stops {
		c, err := colorful.Hex(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: colormap %q stop %d: %v", colour.ErrInvalidColorFormat, in.Name, i, err)
		}
		stops[i] = Stop{Pos: s.Pos, Colour: c}
	}
	return New(in.Name, in.N, stops)
}
