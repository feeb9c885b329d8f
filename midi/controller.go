package midi

import "go-scales/theory"

// NoteEvent is sent when a note is played on a keyboard
type NoteEvent struct {
	Note     uint8
	Velocity uint8
	Channel  uint8
}

// PitchClass is the pitch class of the played key
func (e NoteEvent) PitchClass() theory.PitchClass {
	return PitchClassOf(e.Note)
}

// Controller is the interface for MIDI input devices
type Controller interface {
	ID() string
	NoteEvents() <-chan NoteEvent
	Close() error
}

// PitchClassOf maps a MIDI note number (60 = middle C) onto the A-based pitch circle.
func PitchClassOf(note uint8) theory.PitchClass {
	// MIDI counts from C; C sits 3 half steps above A
	pc, err := theory.Step(int(note)%theory.NumPitchClasses, int(theory.C), theory.NumPitchClasses)
	if err != nil {
		// note%12 is always in range
		panic(err)
	}
	return theory.PitchClass(pc)
}
