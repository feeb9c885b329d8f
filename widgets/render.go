package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-scales/theme"
	"go-scales/theory"
)

// RenderNote renders a note name in the given color
func RenderNote(name string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(name)
}

// RenderScaleTable renders one row per degree: position, note, chord numeral, quality
func RenderScaleTable(s theory.Scale, th *theme.Theme) (string, error) {
	head := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(th.Muted())

	var lines []string
	lines = append(lines, head.Render(s.Name()))
	lines = append(lines, dim.Render(fmt.Sprintf("    %-4s %-5s %-8s %s", "Deg", "Note", "Interval", "Chord")))

	for i, st := range s.Steps {
		deg, err := theory.ToRoman(i+1, true)
		if err != nil {
			return "", err
		}
		marker := th.Symbols.Degree
		if i == 0 {
			marker = th.Symbols.Root
		}
		color := th.Quality(st.Quality)
		lines = append(lines, fmt.Sprintf("  %c %-4s %s %s %s",
			marker,
			deg,
			RenderNote(fmt.Sprintf("%-5s", st.Note), color),
			fmt.Sprintf("%-8s", st.Numeral),
			RenderNote(st.Quality.String(), color),
		))
	}

	return strings.Join(lines, "\n"), nil
}

// RenderScaleInline renders "A Aeolian: A B C ..." with notes colored by quality
func RenderScaleInline(s theory.Scale, th *theme.Theme) string {
	notes := make([]string, len(s.Steps))
	for i, st := range s.Steps {
		notes[i] = RenderNote(st.Note, th.Quality(st.Quality))
	}
	head := lipgloss.NewStyle().Foreground(th.Accent()).Render(s.Name() + ":")
	return head + " " + strings.Join(notes, " ")
}

// RenderModeTable lists the seven modes with their degree data
func RenderModeTable(th *theme.Theme) string {
	dim := lipgloss.NewStyle().Foreground(th.Muted())
	lines := []string{dim.Render(fmt.Sprintf("  %-2s %-11s %-8s %-11s %s", "#", "Mode", "Numeral", "Quality", "Step"))}
	for _, m := range theory.Modes() {
		step := "whole"
		if m.HalfSteps() == 1 {
			step = "half"
		}
		lines = append(lines, fmt.Sprintf("  %-2d %-11s %-8s %s %s",
			m.Number(), m.String(), m.Numeral(),
			RenderNote(fmt.Sprintf("%-11s", m.Quality()), th.Quality(m.Quality())),
			step,
		))
	}
	return strings.Join(lines, "\n")
}

// RenderPitchTable lists the 12 pitch classes with both spellings
func RenderPitchTable(th *theme.Theme) string {
	dim := lipgloss.NewStyle().Foreground(th.Muted())
	lines := []string{dim.Render(fmt.Sprintf("  %-3s %-6s %s", "#", "Sharp", "Flat"))}
	for _, pc := range theory.PitchClasses() {
		lines = append(lines, fmt.Sprintf("  %-3d %-6s %s", int(pc), pc.Name(theory.Sharps), pc.Name(theory.Flats)))
	}
	return strings.Join(lines, "\n")
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
