package theory

import (
	"fmt"
	"strings"
	"unicode"
)

// PitchClass is one of the 12 half-step positions, starting at A.
type PitchClass int

const (
	A PitchClass = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// NumPitchClasses is the size of the pitch circle
const NumPitchClasses = 12

// Spelling picks the name used for black-key pitches
type Spelling int

const (
	Sharps Spelling = iota
	Flats
)

func (s Spelling) String() string {
	if s == Flats {
		return "flats"
	}
	return "sharps"
}

// ParseSpelling accepts "sharps", "flats" and their one-character forms.
func ParseSpelling(s string) (Spelling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sharps", "sharp", "#", "s":
		return Sharps, nil
	case "flats", "flat", "b", "f":
		return Flats, nil
	}
	return Sharps, fmt.Errorf("unknown spelling %q", s)
}

// MarshalYAML writes the spelling by name.
func (s Spelling) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML reads the spelling by name.
func (s *Spelling) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseSpelling(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// [sharp name, flat name] per pitch class
var pitchNames = [NumPitchClasses][2]string{
	A:      {"A", "A"},
	ASharp: {"A#", "Bb"},
	B:      {"B", "B"},
	C:      {"C", "C"},
	CSharp: {"C#", "Db"},
	D:      {"D", "D"},
	DSharp: {"D#", "Eb"},
	E:      {"E", "E"},
	F:      {"F", "F"},
	FSharp: {"F#", "Gb"},
	G:      {"G", "G"},
	GSharp: {"G#", "Ab"},
}

// Accidental aliases: "s" and "f" are the ASCII forms of sharp and flat.
var accidentalAliases = map[byte]byte{'#': 's', 'b': 'f'}

var pitchByName = buildPitchIndex()

func buildPitchIndex() map[string]PitchClass {
	idx := make(map[string]PitchClass, 3*NumPitchClasses)
	add := func(name string, pc PitchClass) {
		if prev, ok := idx[name]; ok && prev != pc {
			panic(fmt.Sprintf("pitch name %q maps to both %d and %d", name, prev, pc))
		}
		idx[name] = pc
	}
	for pc, names := range pitchNames {
		for _, name := range names {
			add(name, PitchClass(pc))
			if len(name) == 2 {
				add(name[:1]+string(accidentalAliases[name[1]]), PitchClass(pc))
			}
		}
	}
	return idx
}

// Valid reports whether p is in the 12-tone table.
func (p PitchClass) Valid() bool {
	return p >= 0 && p < NumPitchClasses
}

// Name returns the spelled name of p. Out-of-table values render as "?".
func (p PitchClass) Name(sp Spelling) string {
	if !p.Valid() {
		return "?"
	}
	if sp == Flats {
		return pitchNames[p][1]
	}
	return pitchNames[p][0]
}

func (p PitchClass) String() string {
	return p.Name(Sharps)
}

// Spell returns the name of pitch class n under the given spelling.
func Spell(n int, sp Spelling) (string, error) {
	if !PitchClass(n).Valid() {
		return "", fmt.Errorf("pitch class %d: %w", n, ErrIndexOutOfRange)
	}
	return PitchClass(n).Name(sp), nil
}

// ParsePitchClass resolves a note name in either spelling.
func ParsePitchClass(name string) (PitchClass, error) {
	pc, ok := pitchByName[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownNoteName)
	}
	return pc, nil
}

// NormalizeName turns typed input like "cs" or "BB" into table form ("Cs", "Bb").
// It only checks shape; ParsePitchClass decides whether the name exists.
func NormalizeName(input string) (string, error) {
	s := strings.TrimSpace(input)
	if len(s) < 1 || len(s) > 2 {
		return "", fmt.Errorf("%q must be 1 or 2 characters: %w", input, ErrUnknownNoteName)
	}
	runes := []rune(s)
	out := string(unicode.ToUpper(runes[0]))
	if len(runes) == 2 {
		out += string(unicode.ToLower(runes[1]))
	}
	return out, nil
}

// PitchClasses returns all 12 pitch classes in table order.
func PitchClasses() []PitchClass {
	out := make([]PitchClass, NumPitchClasses)
	for i := range out {
		out[i] = PitchClass(i)
	}
	return out
}
