package colour

import (
	"fmt"
	"slices"

	"golang.org/x/image/colornames"
)

// NameTable maps colour names to hex strings. Implementations must be safe
// for concurrent reads.
type NameTable interface {
	Lookup(name string) (hex string, ok bool)
}

// MapNames is a NameTable backed by a plain map of name to hex string.
type MapNames map[string]string

// Lookup returns the hex string registered for name.
func (m MapNames) Lookup(name string) (string, bool) {
	hex, ok := m[name]
	return hex, ok
}

type cssNames struct{}

// CSSNames returns the table of CSS/SVG 1.1 colour names ("red",
// "cornflowerblue", ...). Names are matched exactly, lowercase.
func CSSNames() NameTable {
	return cssNames{}
}

func (cssNames) Lookup(name string) (string, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

// CSSNameList returns every name known to CSSNames, sorted.
func CSSNameList() []string {
	return slices.Clone(colornames.Names)
}
