package widgets

import (
	"strings"
	"testing"

	"go-scales/theme"
	"go-scales/theory"
)

func testTheme() *theme.Theme {
	return theme.New(theme.DefaultPalette())
}

func TestRenderScaleTable(t *testing.T) {
	s, err := theory.Derive("A", 1, theory.Sharps)
	if err != nil {
		t.Fatal(err)
	}
	out, err := RenderScaleTable(s, testTheme())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("expected title, header and 7 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "A Ionian") {
		t.Errorf("missing title in %q", lines[0])
	}
	for _, want := range []string{"C#", "iii", "minor", "III"} {
		if !strings.Contains(lines[4], want) {
			t.Errorf("third degree row %q missing %q", lines[4], want)
		}
	}
	if !strings.Contains(lines[8], "VII") || !strings.Contains(lines[8], "diminished") {
		t.Errorf("last row %q should be VII diminished", lines[8])
	}
	if !strings.Contains(lines[2], "●") {
		t.Errorf("root row %q should carry the root marker", lines[2])
	}
}

func TestRenderScaleInline(t *testing.T) {
	s, _ := theory.Derive("A", 6, theory.Sharps)
	out := RenderScaleInline(s, testTheme())
	for _, want := range []string{"A Aeolian:", "A", "B", "C", "D", "E", "F", "G"} {
		if !strings.Contains(out, want) {
			t.Errorf("inline output %q missing %q", out, want)
		}
	}
}

func TestRenderModeTable(t *testing.T) {
	out := RenderModeTable(testTheme())
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected header and 7 modes, got %d", len(lines))
	}
	if !strings.Contains(lines[7], "Locrian") || !strings.Contains(lines[7], "half") {
		t.Errorf("unexpected Locrian row %q", lines[7])
	}
}

func TestRenderPitchTable(t *testing.T) {
	out := RenderPitchTable(testTheme())
	if !strings.Contains(out, "C#") || !strings.Contains(out, "Db") {
		t.Errorf("pitch table missing spellings:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 13 {
		t.Errorf("expected 13 lines, got %d", got)
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{
		{Title: "Shell", Keys: []KeyBinding{{"enter", "derive"}, {"tab", "sharps/flats"}}},
	})
	want := "Shell\n  enter        derive\n  tab          sharps/flats"
	if out != want {
		t.Errorf("RenderKeyHelp() = %q, want %q", out, want)
	}
}
