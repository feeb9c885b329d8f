package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("enable: %v", err)
	}
	t.Cleanup(Disable)

	if !Enabled() {
		t.Fatal("expected logging enabled")
	}
	Log("scale", "derived %s %d", "A", 6)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "Debug logging started") {
		t.Errorf("missing start line in %q", out)
	}
	if !strings.Contains(out, `msg="derived A 6"`) || !strings.Contains(out, "category=scale") {
		t.Errorf("missing log line in %q", out)
	}
}

func TestLogNoopWhenDisabled(t *testing.T) {
	Disable()
	if Enabled() {
		t.Fatal("expected logging disabled")
	}
	// must not panic with no file
	Log("scale", "ignored %d", 1)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, ".config", "go-scales", "debug.log")
	if path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
