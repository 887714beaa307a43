package tetris

// Color is an RGB hex string such as "#0ab4c8". The core never interprets
// colors; it only carries them so that every block keeps a stable numeric
// color code the active theme can be looked up through.
type Color string

// PaletteSize is the number of colors per palette, and also the range of
// valid color codes.
const PaletteSize = 7

// Palette is a named set of seven block colors. Palettes form a cycle
// traversed on every level-up.
type Palette struct {
	name   string
	colors [PaletteSize]Color
}

// Name returns the palette's display name.
func (p Palette) Name() string {
	return p.name
}

// Color resolves a stable color code to this palette's color for it.
// Out-of-range codes resolve to the zero Color.
func (p Palette) Color(code int) Color {
	if code < 0 || code >= PaletteSize {
		return ""
	}
	return p.colors[code]
}

// Next returns the palette that follows this one in the theme cycle.
func (p Palette) Next() Palette {
	for i, q := range Palettes {
		if q.name == p.name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}

// PaletteByName returns the named palette, falling back to the first one.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.name == name {
			return p, true
		}
	}
	return Palettes[0], false
}

// Palettes holds every available theme in cycle order.
var Palettes = []Palette{
	{"ocean", [PaletteSize]Color{
		"#0ab4c8", "#3264c8", "#327364", "#0a3296", "#05af8c", "#64c8fa", "#141464",
	}},
	{"tropical", [PaletteSize]Color{
		"#fa64fa", "#c84b14", "#c8640a", "#6321af", "#3c001e", "#c8214b", "#640564",
	}},
	{"gold", [PaletteSize]Color{
		"#909191", "#632213", "#d4af37", "#997926", "#909191", "#632213", "#997926",
	}},
	{"hill", [PaletteSize]Color{
		"#0d9131", "#1c5e39", "#117b50", "#098365", "#014413", "#28bc7a", "#5bc641",
	}},
	{"starlight", [PaletteSize]Color{
		"#c8c8c8", "#c8c8c8", "#c8c8c8", "#c8c8c8", "#c8c8c8", "#c8c8c8", "#c8c8c8",
	}},
	{"crayon", [PaletteSize]Color{
		"#96c832", "#c81e1e", "#3296c8", "#5032c8", "#e19632", "#c81496", "#1ec83c",
	}},
	{"fuse", [PaletteSize]Color{
		"#5d57c8", "#c82ab7", "#44939b", "#0d0d0e", "#e94484", "#4877c8", "#8e51c8",
	}},
}
