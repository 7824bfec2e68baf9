// Package clock provides the deferred-callback substrate for the page loop.
//
// A Scheduler runs callbacks after a delay. The Loop scheduler posts expired
// callbacks onto a channel drained by the single event loop, so timer work is
// interleaved with input handling and never runs concurrently with it. The
// Manual scheduler advances a virtual clock for deterministic tests.
package clock

import "time"

// Timer is a handle to one scheduled callback
type Timer interface {
	// Stop prevents the callback from running
	// Returns false if the callback already ran or was already stopped
	Stop() bool
}

// Scheduler schedules callbacks against its own notion of time
type Scheduler interface {
	TimeProvider
	AfterFunc(d time.Duration, fn func()) Timer
}
