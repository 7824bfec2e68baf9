package pace

import (
	"sync"
	"time"

	"github.com/lixenwraith/showcase/clock"
)

// Debouncer coalesces a burst of calls into one invocation of fn
//
// Trailing mode (immediate=false): fn runs wait after the last call, with that call's argument.
// Immediate mode: fn runs synchronously on the first call of a burst and the
// trailing invocation is suppressed for the whole burst.
type Debouncer[T any] struct {
	sched     clock.Scheduler
	wait      time.Duration
	immediate bool
	fn        func(T)

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64 // Invalidates superseded timers whose callback is already queued
}

// NewDebouncer wraps fn with a quiet-period delay
func NewDebouncer[T any](sched clock.Scheduler, wait time.Duration, immediate bool, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		sched:     sched,
		wait:      wait,
		immediate: immediate,
		fn:        fn,
	}
}

// Debounce returns fn debounced by wait
func Debounce[T any](sched clock.Scheduler, wait time.Duration, immediate bool, fn func(T)) func(T) {
	d := NewDebouncer(sched, wait, immediate, fn)
	return d.Call
}

// Call records a call and reschedules the pending invocation
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	callNow := d.immediate && d.timer == nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.wait, func() { d.later(gen, arg) })
	d.mu.Unlock()

	if callNow {
		d.fn(arg)
	}
}

// Pending reports whether a timer is outstanding, i.e. a burst is in progress
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer[T]) later(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if !d.immediate {
		d.fn(arg)
	}
}
