// Package colour provides conversion between hex and RGB colour
// representations and linear gradients between two colours.
package colour

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColorFormat is returned when a hex string is not 6 hex digits
	// or an RGB channel falls outside [0,255].
	ErrInvalidColorFormat = errors.New("invalid colour format")

	// ErrInvalidArgument is returned for out-of-range numeric arguments such as
	// a gradient of fewer than two steps.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Color is either a HexString or an RGB value.
type Color interface {
	isColor()
}

// HexString is a colour given as text: a hex literal ("#1a2b3c", "1A2B3C",
// "0x1a2b3c") or a name known to a NameTable.
type HexString string

func (HexString) isColor() {}

// RGB represents a colour as three integer channels. A valid RGB has every
// channel in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (RGB) isColor() {}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Valid reports whether every channel lies in [0,255].
func (rgb RGB) Valid() bool {
	return inRange(rgb.R) && inRange(rgb.G) && inRange(rgb.B)
}

func inRange(v int) bool {
	return v >= 0 && v <= 255
}
