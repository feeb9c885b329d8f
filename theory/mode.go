package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is a diatonic mode, 0-based in major-scale order (Ionian = 0).
// User-facing numbers 1-7 only cross into this type through ModeFromNumber.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// NumModes is the size of the mode circle
const NumModes = 7

// ChordQuality is the triad quality built on a scale degree
type ChordQuality int

const (
	Major ChordQuality = iota
	Minor
	Diminished
)

var qualityNames = []string{"major", "minor", "diminished"}

func (q ChordQuality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "unknown"
	}
	return qualityNames[q]
}

// MarshalYAML writes the quality by name.
func (q ChordQuality) MarshalYAML() (any, error) {
	return q.String(), nil
}

type modeInfo struct {
	name      string
	quality   ChordQuality
	numeral   string
	halfSteps int // distance to the next degree of the parent major scale
}

var modes = [NumModes]modeInfo{
	Ionian:     {"Ionian", Major, "I", 2},
	Dorian:     {"Dorian", Minor, "ii", 2},
	Phrygian:   {"Phrygian", Minor, "iii", 1},
	Lydian:     {"Lydian", Major, "IV", 2},
	Mixolydian: {"Mixolydian", Major, "V", 2},
	Aeolian:    {"Aeolian", Minor, "vi", 2},
	Locrian:    {"Locrian", Diminished, "vii", 1},
}

// ModeFromNumber converts the 1-7 numbering (1 = Ionian) to a Mode.
func ModeFromNumber(n int) (Mode, error) {
	if n < 1 || n > NumModes {
		return 0, fmt.Errorf("mode %d not in 1-%d: %w", n, NumModes, ErrUnknownMode)
	}
	return Mode(n - 1), nil
}

// ParseMode accepts a mode number ("6") or name ("aeolian").
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ModeFromNumber(n)
	}
	for i, m := range modes {
		if strings.EqualFold(m.name, s) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Valid reports whether m is in the mode table.
func (m Mode) Valid() bool {
	return m >= 0 && m < NumModes
}

// Number is the 1-based mode number shown to users.
func (m Mode) Number() int {
	return int(m) + 1
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m].name
}

// info returns the table row for m. It panics on a mode outside the table,
// the same way indexing past the end of a slice does.
func (m Mode) info() modeInfo {
	if !m.Valid() {
		panic(fmt.Sprintf("theory: %s outside the mode table", m))
	}
	return modes[m]
}

// Quality is the chord quality of the degree this mode starts on.
// m must be Valid.
func (m Mode) Quality() ChordQuality {
	return m.info().quality
}

// Numeral is the roman numeral of the degree within the parent major scale.
// m must be Valid.
func (m Mode) Numeral() string {
	return m.info().numeral
}

// HalfSteps is the distance from this degree to the next one. m must be Valid.
func (m Mode) HalfSteps() int {
	return m.info().halfSteps
}

// Modes returns all modes in table order.
func Modes() []Mode {
	out := make([]Mode, NumModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}
