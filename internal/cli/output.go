package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// enumValue is a pflag.Value restricted to a fixed set of strings.
type enumValue struct {
	value   *string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func (e *enumValue) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	*e.value = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}

// addFormatFlag registers --format/-f on fs, defaulting to text.
func addFormatFlag(fs *pflag.FlagSet, target *string) {
	*target = formatText
	fs.VarP(&enumValue{value: target, allowed: []string{formatText, formatJSON}},
		"format", "f", "output format (text, json)")
}

// addPreviewFlag registers --preview on fs, defaulting to auto.
func addPreviewFlag(fs *pflag.FlagSet, target *string) {
	*target = previewAuto
	fs.Var(&enumValue{value: target, allowed: []string{previewAuto, previewAlways, previewNever}},
		"preview", "show colour swatches (auto, always, never); --preview alone means always")
	fs.Lookup("preview").NoOptDefVal = previewAlways
}

// showPreview reports whether swatches should be written to w.
// In auto mode swatches are shown only on a terminal and when NO_COLOR is unset.
func (a *app) showPreview(mode string, w io.Writer) bool {
	switch mode {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	if a.cfg.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeJSON writes v to w as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseColour interprets a command-line colour argument. "r,g,b" and
// "rgb(r, g, b)" become RGB values; anything else is a name or hex literal.
func parseColour(s string) (colour.Color, error) {
	inner := strings.TrimSpace(s)
	if strings.HasPrefix(inner, "rgb(") && strings.HasSuffix(inner, ")") {
		inner = inner[len("rgb(") : len(inner)-1]
	} else if !strings.Contains(inner, ",") {
		return colour.HexString(inner), nil
	}
	return parseRGB(strings.Split(inner, ","))
}

// parseRGB parses three decimal channel values. Range checking is left to
// the conversion functions.
func parseRGB(parts []string) (colour.RGB, error) {
	if len(parts) != 3 {
		return colour.RGB{}, fmt.Errorf("%w: expected 3 channels, got %d", colour.ErrInvalidColorFormat, len(parts))
	}

	var channels [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return colour.RGB{}, fmt.Errorf("%w: channel %q is not an integer", colour.ErrInvalidColorFormat, p)
		}
		channels[i] = v
	}
	return colour.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
