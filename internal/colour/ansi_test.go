package colour

import (
	"strings"
	"testing"
)

func TestSwatch(t *testing.T) {
	got := Swatch(RGB{R: 255, G: 128, B: 0}, 4)
	want := "\033[48;2;255;128;0m    \033[0m"
	if got != want {
		t.Errorf("Swatch() = %q, want %q", got, want)
	}

	if got := Swatch(RGB{}, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Swatch() with zero width should use default width, got %q", got)
	}
}

func TestSwatchWithText(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		fg     string
	}{
		{name: "dark background uses white text", colour: RGB{R: 10, G: 10, B: 40}, fg: "\033[38;2;255;255;255m"},
		{name: "light background uses black text", colour: RGB{R: 250, G: 250, B: 200}, fg: "\033[38;2;0;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwatchWithText(tt.colour, "ab", 6)
			if !strings.Contains(got, tt.fg) {
				t.Errorf("SwatchWithText() = %q, want foreground %q", got, tt.fg)
			}
			if !strings.Contains(got, "  ab  ") {
				t.Errorf("SwatchWithText() = %q, want centred text", got)
			}
		})
	}

	if got := SwatchWithText(RGB{}, "0x123456", 4); !strings.Contains(got, "0x12") || strings.Contains(got, "0x123") {
		t.Errorf("SwatchWithText() should truncate long text, got %q", got)
	}
}
