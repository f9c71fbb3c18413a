package colormap

import (
	"slices"
	"sync"
)

// Registry resolves colormap names. Implementations must be safe for
// concurrent reads.
type Registry interface {
	Lookup(name string) (*Colormap, bool)
	Names() []string
}

// MapRegistry is a Registry holding a fixed set of colormaps.
type MapRegistry struct {
	maps map[string]*Colormap
}

// NewRegistry creates a registry from the given colormaps. A later colormap
// replaces an earlier one with the same name.
func NewRegistry(maps ...*Colormap) *MapRegistry {
	r := &MapRegistry{maps: make(map[string]*Colormap, len(maps))}
	for _, m := range maps {
		r.maps[m.Name()] = m
	}
	return r
}

// Lookup returns the colormap registered under name.
func (r *MapRegistry) Lookup(name string) (*Colormap, bool) {
	m, ok := r.maps[name]
	return m, ok
}

// Names returns the registered colormap names, sorted.
func (r *MapRegistry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered colormaps.
func (r *MapRegistry) Len() int {
	return len(r.maps)
}

var builtin = sync.OnceValue(func() *MapRegistry {
	maps := make([]*Colormap, 0, 2*len(builtinStops))
	for name, hexes := range builtinStops {
		m := mustFromHex(name, hexes...)
		maps = append(maps, m, m.Reversed(name+"_r"))
	}
	return NewRegistry(maps...)
})

// Builtin returns the registry of bundled colormaps and their "_r" reversed
// variants. The returned registry is shared and must not be modified.
func Builtin() *MapRegistry {
	return builtin()
}

func mustFromHex(name string, hexes ...string) *Colormap {
	m, err := FromHex(name, DefaultN, hexes...)
	if err != nil {
		panic("colormap: " + err.Error())
	}
	return m
}

// Keypoints of the bundled colormaps, evenly spaced across [0,1].
var builtinStops = map[string][]string{
	"viridis": {
		"#440154", "#482374", "#404387", "#345e8d", "#29788e",
		"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	},
	"plasma": {
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679",
		"#e56b5d", "#f89441", "#fdc328", "#f0f921",
	},
	"inferno": {
		"#000004", "#280b54", "#65156e", "#9f2a63",
		"#d44842", "#f57d15", "#fac127", "#fcffa4",
	},
	"magma": {
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
		"#e55064", "#fb8761", "#fec287", "#fcfdbf",
	},
	"cividis": {
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8779", "#a69d75", "#c4b56c", "#e4cf5b", "#fee838",
	},
	"greys": {
		"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
		"#737373", "#525252", "#252525", "#000000",
	},
	"blues": {
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	},
	"reds": {
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
		"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
	},
	"coolwarm": {
		"#3b4cc0", "#6788ee", "#9abbff", "#c9d7f0", "#edd1c2",
		"#f7a889", "#e26952", "#b40426",
	},
}
