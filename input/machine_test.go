package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIntents(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Intent{Type: IntentScroll, ScrollDir: ScrollDown, Count: 1}},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Intent{Type: IntentScroll, ScrollDir: ScrollUp, Count: 1}},
		{"pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), Intent{Type: IntentScrollPage, ScrollDir: ScrollDown}},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), Intent{Type: IntentScrollTop}},
		{"G", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), Intent{Type: IntentScrollBottom}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Intent{Type: IntentCardNext}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{Type: IntentCardPrev}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Intent{Type: IntentFocusNext}},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), Intent{Type: IntentFocusPrev}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{Type: IntentActivate}},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), Intent{Type: IntentJumpSection, Count: 2}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestUnboundKey(t *testing.T) {
	m := NewMachine()
	assert.Nil(t, m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	assert.Nil(t, m.Process(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)))
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(120, 40))
	require.NotNil(t, got)
	assert.Equal(t, Intent{Type: IntentResize, Width: 120, Height: 40}, *got)
}

func TestMouseClickEdge(t *testing.T) {
	m := NewMachine()

	got := m.Process(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, Intent{Type: IntentMouseDown, X: 5, Y: 6}, *got)

	assert.Nil(t, m.Process(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone)), "held button is not a new press")

	got = m.Process(tcell.NewEventMouse(7, 6, tcell.Button1, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentMouseMove, got.Type, "drag reports motion")

	got = m.Process(tcell.NewEventMouse(7, 6, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, Intent{Type: IntentMouseClick, X: 7, Y: 6}, *got, "click fires on release")

	assert.Nil(t, m.Process(tcell.NewEventMouse(7, 6, tcell.ButtonNone, tcell.ModNone)))

	got = m.Process(tcell.NewEventMouse(7, 6, tcell.Button1, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentMouseDown, got.Type)
}

func TestRightButtonDoesNotClick(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventMouse(2, 2, tcell.Button2, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentMouseMove, got.Type)
	assert.Nil(t, m.Process(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone)))
}

func TestMouseMoveDedup(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, Intent{Type: IntentMouseMove, X: 1, Y: 1}, *got)
	assert.Nil(t, m.Process(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)))
}

func TestWheel(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentScroll, got.Type)
	assert.Equal(t, ScrollDown, got.ScrollDir)
	assert.Equal(t, WheelRows, got.Count)

	got = m.Process(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, ScrollUp, got.ScrollDir)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "card_next", IntentCardNext.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
