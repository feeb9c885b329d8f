package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"go-scales/theory"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Name != "plasma" {
		t.Errorf("expected name plasma, got %q", p.Name)
	}
	if len(p.Colors) != 9 {
		t.Fatalf("expected 9 colors, got %d", len(p.Colors))
	}
	if p.Colors[0] != (RGB{13, 8, 135}) {
		t.Errorf("unexpected first color %v", p.Colors[0])
	}
}

func TestLoadGPL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono.gpl")
	content := `GIMP Palette
Name: mono
Columns: 2
# comment
0 0 0	black
255 255 255	white
not a color line
300 0 0	out of range
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadGPL(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "mono" || len(p.Colors) != 2 {
		t.Fatalf("unexpected palette %+v", p)
	}

	mid := p.Lookup(0.5)
	if mid != (RGB{127, 127, 127}) {
		t.Errorf("Lookup(0.5) = %v, want gray", mid)
	}
	if p.Lookup(-1) != p.Colors[0] || p.Lookup(2) != p.Colors[1] {
		t.Error("Lookup should clamp to the palette ends")
	}
}

func TestLookupSingleColor(t *testing.T) {
	p, err := ParseGPL(strings.NewReader("GIMP Palette\n10 20 30\n"), "one.gpl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, norm := range []float64{0, 0.5, 1} {
		if got := p.Lookup(norm); got != (RGB{10, 20, 30}) {
			t.Errorf("Lookup(%v) = %v", norm, got)
		}
	}
}

func TestParseGPLEmpty(t *testing.T) {
	_, err := ParseGPL(strings.NewReader("GIMP Palette\nName: empty\n"), "empty.gpl")
	if err == nil || !strings.Contains(err.Error(), "empty.gpl") {
		t.Errorf("expected no-colors error naming the source, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.gpl")); err == nil {
		t.Error("expected error for missing palette")
	}
}

func TestQualityColors(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[lipgloss.Color]theory.ChordQuality{}
	for _, q := range []theory.ChordQuality{theory.Major, theory.Minor, theory.Diminished} {
		c := th.Quality(q)
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %s", prev, q, c)
		}
		seen[c] = q
	}
	if th.Quality(theory.Major) != lipgloss.Color("#f0f921") {
		t.Errorf("major color = %s", th.Quality(theory.Major))
	}
}
