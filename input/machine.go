// Package input turns tcell events into semantic intents for the page engine.
package input

import "github.com/gdamore/tcell/v2"

// WheelRows is the scroll distance of one wheel notch
const WheelRows = 3

// Machine parses tcell events into semantic intents
// Tracks button state so a press and its release yield one down and one click
type Machine struct {
	keyTable *KeyTable
	buttons  tcell.ButtonMask
	lastX    int
	lastY    int
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		lastX:    -1,
		lastY:    -1,
	}
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: entry.Intent, ScrollDir: entry.ScrollDir, Count: entry.Count}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := m.buttons
	m.buttons = btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentScroll, ScrollDir: ScrollUp, Count: WheelRows, X: x, Y: y}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentScroll, ScrollDir: ScrollDown, Count: WheelRows, X: x, Y: y}
	case btn&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentMouseDown, X: x, Y: y}
	case btn&tcell.Button1 == 0 && prev&tcell.Button1 != 0:
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentMouseClick, X: x, Y: y}
	}

	if x == m.lastX && y == m.lastY {
		return nil
	}
	m.lastX, m.lastY = x, y
	return &Intent{Type: IntentMouseMove, X: x, Y: y}
}
