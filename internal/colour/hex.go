package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB converts a hex colour string to an RGB value.
// The input may carry a leading "#" (or the "0x" prefix produced by RGBToHex)
// and must otherwise be exactly 6 hex digits, case-insensitive.
func HexToRGB(hex string) (RGB, error) {
	digits := stripHexPrefix(hex)
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidColorFormat, hex)
	}

	var channels [3]int
	for i, offset := range []int{0, 2, 4} {
		pair := digits[offset : offset+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return RGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, hex)
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
		}
		channels[i] = int(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHex formats an RGB value as "0x" followed by 6 lowercase hex digits.
// Use CSSHex for the "#rrggbb" form.
func RGBToHex(rgb RGB) (string, error) {
	if !rgb.Valid() {
		return "", fmt.Errorf("%w: %s has a channel outside [0,255]", ErrInvalidColorFormat, rgb)
	}
	return fmt.Sprintf("0x%02x%02x%02x", rgb.R, rgb.G, rgb.B), nil
}

// CSSHex formats a valid RGB value as "#rrggbb". Invalid channels are clamped.
func CSSHex(rgb RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(rgb.R), clamp(rgb.G), clamp(rgb.B))
}

func stripHexPrefix(s string) string {
	if strings.HasPrefix(s, "#") {
		return s[1:]
	}
	if len(s) == 8 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		return s[2:]
	}
	return s
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
