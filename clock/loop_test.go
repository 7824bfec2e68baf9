package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDeliversThroughChannel(t *testing.T) {
	l := NewLoop(4)
	defer l.Close()

	ran := false
	l.AfterFunc(5*time.Millisecond, func() { ran = true })

	select {
	case fn := <-l.C():
		// Callback only runs when the loop goroutine invokes it
		assert.False(t, ran)
		fn()
		assert.True(t, ran)
	case <-time.After(time.Second):
		t.Fatal("timer was not delivered")
	}
	assert.Equal(t, 0, l.Pending())
}

func TestLoopStopBeforeRun(t *testing.T) {
	l := NewLoop(4)
	defer l.Close()

	ran := false
	timer := l.AfterFunc(time.Millisecond, func() { ran = true })

	// Let the runtime timer post the callback, then stop before running it
	fn := <-l.C()
	require.True(t, timer.Stop())
	fn()
	assert.False(t, ran)
}

func TestLoopCloseStopsTimers(t *testing.T) {
	l := NewLoop(1)
	timer := l.AfterFunc(time.Hour, func() {})
	assert.Equal(t, 1, l.Pending())

	l.Close()
	assert.Equal(t, 0, l.Pending())
	assert.False(t, timer.Stop())

	late := l.AfterFunc(time.Millisecond, func() {})
	assert.False(t, late.Stop(), "timers created after close are inert")
}
