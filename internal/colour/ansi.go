package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with text centred on it. The text is black
// or white, whichever reads better against the colour.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if Luminance(c) > 0.5 {
		fg = RGB{}
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + foreground(fg) + displayText + ansiReset
}

// Luminance returns the perceived brightness of c in [0,1] using the
// ITU-R BT.601 weights.
func Luminance(c RGB) float64 {
	return (0.299*float64(clamp(c.R)) + 0.587*float64(clamp(c.G)) + 0.114*float64(clamp(c.B))) / 255.0
}

func background(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, clamp(c.R), clamp(c.G), clamp(c.B), ansiSuffix)
}

func foreground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, clamp(c.R), clamp(c.G), clamp(c.B), ansiSuffix)
}
