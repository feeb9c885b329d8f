package midi

import (
	"testing"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-scales/theory"
)

func TestPitchClassOf(t *testing.T) {
	tests := []struct {
		note uint8
		want theory.PitchClass
	}{
		{60, theory.C},
		{61, theory.CSharp},
		{69, theory.A},
		{70, theory.ASharp},
		{71, theory.B},
		{0, theory.C},
		{21, theory.A}, // lowest piano key
		{127, theory.G},
	}
	for _, tt := range tests {
		if got := PitchClassOf(tt.note); got != tt.want {
			t.Errorf("PitchClassOf(%d) = %s, want %s", tt.note, got, tt.want)
		}
	}
}

func TestNoteOnDecoding(t *testing.T) {
	ev, ok := noteOn(gomidi.NoteOn(2, 64, 90))
	if !ok {
		t.Fatal("expected note-on")
	}
	if ev.Note != 64 || ev.Velocity != 90 || ev.Channel != 2 {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.PitchClass() != theory.E {
		t.Errorf("expected E, got %s", ev.PitchClass())
	}

	if _, ok := noteOn(gomidi.NoteOn(0, 64, 0)); ok {
		t.Error("zero velocity note-on should be ignored")
	}
	if _, ok := noteOn(gomidi.NoteOff(0, 64)); ok {
		t.Error("note-off should be ignored")
	}
	if _, ok := noteOn(gomidi.ControlChange(0, 7, 100)); ok {
		t.Error("control change should be ignored")
	}
}

func TestKeyboardHandleForwardsNotes(t *testing.T) {
	kb, err := NewKeyboardController("test", nil)
	if err != nil {
		t.Fatal(err)
	}
	kb.handle(gomidi.NoteOn(0, 62, 100), 0)
	kb.handle(gomidi.NoteOff(0, 62), 0)

	select {
	case ev := <-kb.NoteEvents():
		if ev.Note != 62 {
			t.Errorf("expected note 62, got %d", ev.Note)
		}
	default:
		t.Fatal("expected a queued note")
	}
	select {
	case ev := <-kb.NoteEvents():
		t.Errorf("unexpected extra event %+v", ev)
	default:
	}
	kb.Close()
}

func TestAccepts(t *testing.T) {
	open := NewDeviceManager("")
	filtered := NewDeviceManager("Keystation")

	tests := []struct {
		port     string
		open     bool
		filtered bool
	}{
		{"Keystation 49 MK3", true, true},
		{"Launchpad X LPX MIDI", false, false},
		{"Midi Through Port-0", false, false},
		{"Arturia MiniLab", true, false},
	}
	for _, tt := range tests {
		if got := open.Accepts(tt.port); got != tt.open {
			t.Errorf("unfiltered accepts(%q) = %v, want %v", tt.port, got, tt.open)
		}
		if got := filtered.Accepts(tt.port); got != tt.filtered {
			t.Errorf("filtered accepts(%q) = %v, want %v", tt.port, got, tt.filtered)
		}
	}
}

type fakeController struct {
	id     string
	notes  chan NoteEvent
	closed bool
}

func (f *fakeController) ID() string { return f.id }

func (f *fakeController) NoteEvents() <-chan NoteEvent { return f.notes }

func (f *fakeController) Close() error {
	f.closed = true
	close(f.notes)
	return nil
}

func TestManagerForwardsAndRemoves(t *testing.T) {
	dm := NewDeviceManager("")
	fc := &fakeController{id: "keys", notes: make(chan NoteEvent, 1)}

	dm.add(fc)
	if ev := <-dm.Events(); ev.Type != DeviceConnected || ev.ID != "keys" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ids := dm.Connected(); len(ids) != 1 || ids[0] != "keys" {
		t.Errorf("unexpected connected list %v", ids)
	}

	fc.notes <- NoteEvent{Note: 69, Velocity: 100}
	select {
	case ev := <-dm.Notes():
		if ev.PitchClass() != theory.A {
			t.Errorf("expected A, got %s", ev.PitchClass())
		}
	case <-time.After(time.Second):
		t.Fatal("note was not forwarded")
	}

	dm.remove("keys")
	if ev := <-dm.Events(); ev.Type != DeviceDisconnected {
		t.Fatalf("expected disconnect, got %+v", ev)
	}
	if !fc.closed {
		t.Error("controller should be closed on removal")
	}
	if len(dm.Connected()) != 0 {
		t.Error("controller should be forgotten")
	}

	// removing twice is a no-op
	dm.remove("keys")
	select {
	case ev := <-dm.Events():
		t.Errorf("unexpected event %+v", ev)
	default:
	}
}
