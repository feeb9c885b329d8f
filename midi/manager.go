package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-scales/debug"
)

// DeviceEvent is emitted when keyboards connect/disconnect
type DeviceEvent struct {
	Type DeviceEventType
	ID   string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// scanTimeout bounds port enumeration (CoreMIDI can hang)
const scanTimeout = 3 * time.Second

// DeviceManager handles hot-plug detection of MIDI keyboards and merges
// their note events into one channel
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	notes       chan NoteEvent
	pollRate    time.Duration
	filter      string
}

// NewDeviceManager creates a device manager accepting input ports whose
// name contains filter (any non-Launchpad input when empty)
func NewDeviceManager(filter string) *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		notes:       make(chan NoteEvent, 64),
		pollRate:    time.Second,
		filter:      strings.ToLower(filter),
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Notes returns note-on events from every connected keyboard
func (dm *DeviceManager) Notes() <-chan NoteEvent {
	return dm.notes
}

// Connected returns the IDs of connected keyboards
func (dm *DeviceManager) Connected() []string {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	ids := make([]string, 0, len(dm.controllers))
	for id := range dm.controllers {
		ids = append(ids, id)
	}
	return ids
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	inPorts, ok := inPortsWithTimeout(scanTimeout)
	if !ok {
		debug.Log("midi", "port scan timed out")
		return
	}

	seen := make(map[string]bool)
	for _, inPort := range inPorts {
		id := inPort.String()
		if !dm.Accepts(id) {
			continue
		}
		seen[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		kb, err := NewKeyboardController(id, inPort)
		if err != nil {
			debug.Log("midi", "open %s: %v", id, err)
			continue
		}
		dm.add(kb)
	}

	dm.mu.RLock()
	var gone []string
	for id := range dm.controllers {
		if !seen[id] {
			gone = append(gone, id)
		}
	}
	dm.mu.RUnlock()

	for _, id := range gone {
		dm.remove(id)
	}
}

// Accepts reports whether an input port should be opened as a keyboard
func (dm *DeviceManager) Accepts(portName string) bool {
	name := strings.ToLower(portName)
	if isLaunchpad(name) {
		return false
	}
	if strings.Contains(name, "through") {
		return false
	}
	return dm.filter == "" || strings.Contains(name, dm.filter)
}

// add registers a controller and forwards its notes until it closes
func (dm *DeviceManager) add(c Controller) {
	dm.mu.Lock()
	dm.controllers[c.ID()] = c
	dm.mu.Unlock()

	go func() {
		for ev := range c.NoteEvents() {
			select {
			case dm.notes <- ev:
			default:
			}
		}
	}()

	debug.Log("midi", "connected %s", c.ID())
	dm.events <- DeviceEvent{Type: DeviceConnected, ID: c.ID()}
}

func (dm *DeviceManager) remove(id string) {
	dm.mu.Lock()
	c, ok := dm.controllers[id]
	delete(dm.controllers, id)
	dm.mu.Unlock()
	if !ok {
		return
	}

	c.Close()
	debug.Log("midi", "disconnected %s", id)
	dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

func isLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad")
}

func inPortsWithTimeout(timeout time.Duration) ([]drivers.In, bool) {
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ports := <-ch:
		return ports, true
	case <-time.After(timeout):
		return nil, false
	}
}

// InPortNames lists MIDI input port names, false if the driver hung
func InPortNames() ([]string, bool) {
	ports, ok := inPortsWithTimeout(scanTimeout)
	if !ok {
		return nil, false
	}
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.String()
	}
	return names, true
}
