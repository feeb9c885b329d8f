package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-scales/config"
	"go-scales/debug"
	"go-scales/midi"
	"go-scales/theme"
	"go-scales/theory"
	"go-scales/widgets"
)

const (
	fieldRoot = iota
	fieldMode
	fieldCount
)

var keyHelp = []widgets.KeySection{
	{Keys: []widgets.KeyBinding{
		{Key: "enter", Desc: "next field / derive"},
		{Key: "up/down", Desc: "switch field"},
		{Key: "tab", Desc: "toggle sharps/flats"},
		{Key: "ctrl+f", Desc: "toggle table/inline"},
		{Key: "x + enter", Desc: "quit (also esc, ctrl+c)"},
	}},
}

type Model struct {
	Config    *config.Config
	DeviceMgr *midi.DeviceManager // nil when MIDI input is off
	Theme     *theme.Theme

	inputs   []textinput.Model
	focused  int
	spelling theory.Spelling
	format   config.Format

	root      theory.PitchClass
	rootSet   bool
	scale     *theory.Scale
	err       error
	keyboards map[string]bool
	quitting  bool
}

// NoteMsg carries a played MIDI key
type NoteMsg midi.NoteEvent

type DeviceEventMsg midi.DeviceEvent

func NewModel(cfg *config.Config, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldRoot] = textinput.New()
	inputs[fieldRoot].Placeholder = "A-G, e.g. C# or Bf"
	inputs[fieldRoot].CharLimit = 2
	inputs[fieldRoot].Focus()

	inputs[fieldMode] = textinput.New()
	inputs[fieldMode].Placeholder = "1-7 (1 Ionian, 6 Aeolian)"
	inputs[fieldMode].CharLimit = 10

	m := Model{
		Config:    cfg,
		DeviceMgr: deviceMgr,
		Theme:     th,
		inputs:    inputs,
		spelling:  cfg.Spelling,
		format:    cfg.Format,
		keyboards: make(map[string]bool),
	}
	if m.format == config.FormatYAML {
		m.format = config.FormatTable
	}

	// Restore the last scale shown
	if cfg.UI.LastRoot != "" && cfg.UI.LastMode != 0 {
		root, rerr := theory.ParsePitchClass(cfg.UI.LastRoot)
		mode, merr := theory.ModeFromNumber(cfg.UI.LastMode)
		if rerr == nil && merr == nil {
			m.root, m.rootSet = root, true
			m.derive(root, mode)
		}
	}

	return m
}

func ListenForNotes(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		return NoteMsg(<-deviceMgr.Notes())
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	if m.DeviceMgr == nil {
		return textinput.Blink
	}
	return tea.Batch(
		textinput.Blink,
		ListenForNotes(m.DeviceMgr),
		ListenForDevices(m.DeviceMgr),
	)
}

// Scale returns the scale currently shown, if any
func (m Model) Scale() (theory.Scale, bool) {
	if m.scale == nil {
		return theory.Scale{}, false
	}
	return *m.scale, true
}

// Err returns the last input error shown to the user
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.quit()

		case "tab":
			if m.spelling == theory.Sharps {
				m.spelling = theory.Flats
			} else {
				m.spelling = theory.Sharps
			}
			if m.scale != nil {
				m.derive(m.scale.Root, m.scale.Mode)
			}
			return m, nil

		case "ctrl+f":
			if m.format == config.FormatTable {
				m.format = config.FormatInline
			} else {
				m.format = config.FormatTable
			}
			return m, nil

		case "up", "down":
			return m, m.focus((m.focused + 1) % fieldCount)

		case "enter":
			return m.submit()
		}

	case NoteMsg:
		ev := midi.NoteEvent(msg)
		m.root, m.rootSet = ev.PitchClass(), true
		m.err = nil
		debug.Log("shell", "midi note %d -> %s", ev.Note, m.root.Name(m.spelling))
		if m.scale != nil {
			m.derive(m.root, m.scale.Mode)
			return m, ListenForNotes(m.DeviceMgr)
		}
		m.inputs[fieldRoot].SetValue(m.root.Name(m.spelling))
		return m, tea.Batch(m.focus(fieldMode), ListenForNotes(m.DeviceMgr))

	case DeviceEventMsg:
		if msg.Type == midi.DeviceConnected {
			m.keyboards[msg.ID] = true
		} else {
			delete(m.keyboards, msg.ID)
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) focus(field int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = field
	return m.inputs[field].Focus()
}

// submit handles enter on the focused field
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.inputs[m.focused].Value())
	if strings.EqualFold(value, "x") {
		return m.quit()
	}

	switch m.focused {
	case fieldRoot:
		name, err := theory.NormalizeName(value)
		var root theory.PitchClass
		if err == nil {
			root, err = theory.ParsePitchClass(name)
		}
		if err != nil {
			m.err = err
			m.inputs[fieldRoot].Reset()
			return m, nil
		}
		m.root, m.rootSet = root, true
		m.err = nil
		m.inputs[fieldRoot].SetValue(name)
		return m, m.focus(fieldMode)

	case fieldMode:
		if !m.rootSet {
			m.err = fmt.Errorf("enter a root note first")
			return m, m.focus(fieldRoot)
		}
		mode, err := theory.ParseMode(value)
		if err != nil {
			m.err = err
			m.inputs[fieldMode].Reset()
			return m, nil
		}
		m.derive(m.root, mode)
		if m.err != nil {
			return m, nil
		}
		m.inputs[fieldRoot].Reset()
		m.inputs[fieldMode].Reset()
		return m, m.focus(fieldRoot)
	}

	return m, nil
}

// derive rebuilds the shown scale in the current spelling
func (m *Model) derive(root theory.PitchClass, mode theory.Mode) {
	s, err := theory.DeriveFrom(root, mode, m.spelling)
	if err != nil {
		m.err = err
		return
	}
	m.scale = &s
	m.err = nil
	m.Config.Remember(root.Name(m.spelling), mode, m.spelling)
	debug.Log("shell", "derived %s", s)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	status := fmt.Sprintf("go-scales  %s  %s", m.spelling, m.format)
	if len(m.keyboards) > 0 {
		status += fmt.Sprintf("  keys:%d", len(m.keyboards))
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(status))
	out.WriteString("\n\n")

	labels := []string{"Root", "Mode"}
	for i, in := range m.inputs {
		cursor := " "
		if i == m.focused {
			cursor = string(m.Theme.Symbols.Prompt)
		}
		out.WriteString(fmt.Sprintf("%s %-5s %s\n", cursor, labels[i], in.View()))
	}

	if m.err != nil {
		out.WriteString("\n")
		out.WriteString(errStyle.Render("Invalid input: " + m.err.Error()))
		out.WriteString("\n")
	}

	if m.scale != nil {
		out.WriteString("\n")
		out.WriteString(m.renderScale())
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))

	return out.String()
}

func (m Model) renderScale() string {
	if m.format == config.FormatInline {
		return widgets.RenderScaleInline(*m.scale, m.Theme)
	}
	table, err := widgets.RenderScaleTable(*m.scale, m.Theme)
	if err != nil {
		return err.Error()
	}
	return table
}
