package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the colour triple applied to the presentation surface.
// Palettes are values; the two defined below are never mutated.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
}

// LightPalette returns the light palette.
func LightPalette() Palette {
	return Palette{
		Primary:    lipgloss.Color("#6751A2"),
		Secondary:  lipgloss.Color("#78737D"),
		Background: lipgloss.Color("#FEF7FF"),
	}
}

// DarkPalette returns the dark palette.
func DarkPalette() Palette {
	return Palette{
		Primary:    lipgloss.Color("#CFBBFF"),
		Secondary:  lipgloss.Color("#C9C3CF"),
		Background: lipgloss.Color("#1B191E"),
	}
}

// Mode is the resolved theme. It is always Light or Dark.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Palette returns the palette for m. Anything that is not Dark maps to the
// light palette so no third palette can ever be applied.
func (m Mode) Palette() Palette {
	if m == Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool { return m == Dark }
