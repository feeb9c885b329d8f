package theory

import (
	"fmt"
	"strings"
)

// ScaleStep is one note of a derived scale.
type ScaleStep struct {
	PitchClass PitchClass   `yaml:"pitch_class"`
	Note       string       `yaml:"note"`
	Mode       Mode         `yaml:"-"`
	Numeral    string       `yaml:"numeral"`
	Quality    ChordQuality `yaml:"quality"`
	HalfSteps  int          `yaml:"half_steps"` // distance to the next step
}

// Label is the interval/quality annotation, e.g. "vii-diminished".
func (s ScaleStep) Label() string {
	return s.Numeral + "-" + s.Quality.String()
}

// Scale is a seven-note diatonic scale starting at Root.
type Scale struct {
	Root     PitchClass  `yaml:"-"`
	Mode     Mode        `yaml:"-"`
	Spelling Spelling    `yaml:"spelling"`
	Steps    []ScaleStep `yaml:"steps"`
}

// Notes returns the spelled note names in scale order.
func (s Scale) Notes() []string {
	out := make([]string, len(s.Steps))
	for i, st := range s.Steps {
		out[i] = st.Note
	}
	return out
}

// PitchClasses returns the pitch classes in scale order.
func (s Scale) PitchClasses() []PitchClass {
	out := make([]PitchClass, len(s.Steps))
	for i, st := range s.Steps {
		out[i] = st.PitchClass
	}
	return out
}

// Span is the total half-step distance walked, 12 for a full octave.
func (s Scale) Span() int {
	total := 0
	for _, st := range s.Steps {
		total += st.HalfSteps
	}
	return total
}

// Name is "<root> <mode>", e.g. "A Aeolian".
func (s Scale) Name() string {
	return s.Root.Name(s.Spelling) + " " + s.Mode.String()
}

func (s Scale) String() string {
	return s.Name() + ": " + strings.Join(s.Notes(), " ")
}

// Derive builds the scale for a root name and a 1-based mode number.
func Derive(root string, mode int, sp Spelling) (Scale, error) {
	pc, err := ParsePitchClass(root)
	if err != nil {
		return Scale{}, err
	}
	m, err := ModeFromNumber(mode)
	if err != nil {
		return Scale{}, err
	}
	return DeriveFrom(pc, m, sp)
}

// DeriveFrom walks the mode table from mode's position, advancing the pitch
// cursor by each degree's half-step distance. Both cursors wrap independently.
func DeriveFrom(root PitchClass, mode Mode, sp Spelling) (Scale, error) {
	if !root.Valid() {
		return Scale{}, fmt.Errorf("root %d: %w", int(root), ErrUnknownNoteName)
	}
	if !mode.Valid() {
		return Scale{}, fmt.Errorf("mode %d: %w", int(mode), ErrUnknownMode)
	}

	scale := Scale{
		Root:     root,
		Mode:     mode,
		Spelling: sp,
		Steps:    make([]ScaleStep, 0, NumModes),
	}

	pitch, degree := int(root), int(mode)
	for i := 0; i < NumModes; i++ {
		m := Mode(degree)
		scale.Steps = append(scale.Steps, ScaleStep{
			PitchClass: PitchClass(pitch),
			Note:       PitchClass(pitch).Name(sp),
			Mode:       m,
			Numeral:    m.Numeral(),
			Quality:    m.Quality(),
			HalfSteps:  m.HalfSteps(),
		})

		var err error
		if pitch, err = Step(pitch, m.HalfSteps(), NumPitchClasses); err != nil {
			return Scale{}, fmt.Errorf("advancing pitch: %w", err)
		}
		if degree, err = Step(degree, 1, NumModes); err != nil {
			return Scale{}, fmt.Errorf("advancing degree: %w", err)
		}
	}

	return scale, nil
}
