package theme

import (
	"github.com/charmbracelet/lipgloss"

	"go-scales/theory"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Root   rune // ● scale root
	Degree rune // ○ other degrees
	Prompt rune // ▶ focused field
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Root:   '●',
			Degree: '○',
			Prompt: '▶',
		},
	}
}

// Load builds a theme from a GPL file, or the built-in palette when path is empty
func Load(path string) (*Theme, error) {
	if path == "" {
		return New(DefaultPalette()), nil
	}
	p, err := LoadGPL(path)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted      = 0.2
	RoleAccent     = 0.5
	RoleMinor      = 0.55
	RoleDiminished = 0.7
	RoleWarning    = 0.8
	RoleMajor      = 1.0
)

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

// Quality colors a chord quality: bright for major, mid for minor, hot for diminished
func (t *Theme) Quality(q theory.ChordQuality) lipgloss.Color {
	switch q {
	case theory.Major:
		return rgbToLipgloss(t.Palette.Lookup(RoleMajor))
	case theory.Minor:
		return rgbToLipgloss(t.Palette.Lookup(RoleMinor))
	case theory.Diminished:
		return rgbToLipgloss(t.Palette.Lookup(RoleDiminished))
	}
	return t.Muted()
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
