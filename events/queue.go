package events

import (
	"math/bits"
	"sync/atomic"
)

// EventQueue is a bounded MPSC ring of page events
// Producers (input poller, file watcher, loop handlers) push without locks,
// the page loop is the only consumer. When the ring is full the oldest
// unread event is overwritten and counted in Dropped.
type EventQueue struct {
	slots     []Event
	published []atomic.Bool // Set once a slot is fully written
	mask      uint64

	head    atomic.Uint64 // Next slot to read
	tail    atomic.Uint64 // Next slot to claim
	dropped atomic.Uint64
}

// NewEventQueue creates a ring holding at least capacity events, rounded up to a power of two
func NewEventQueue(capacity int) *EventQueue {
	size := uint64(1)
	if capacity > 1 {
		size = 1 << bits.Len64(uint64(capacity-1))
	}
	return &EventQueue{
		slots:     make([]Event, size),
		published: make([]atomic.Bool, size),
		mask:      size - 1,
	}
}

// Cap returns the ring size
func (eq *EventQueue) Cap() int {
	return len(eq.slots)
}

// Push claims the next slot and publishes event into it
func (eq *EventQueue) Push(event Event) {
	size := uint64(len(eq.slots))
	for {
		tail := eq.tail.Load()
		if !eq.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & eq.mask
		eq.slots[idx] = event
		eq.published[idx].Store(true)

		// Full ring: skip the reader past the slot just overwritten
		head := eq.head.Load()
		if tail+1-head > size && eq.head.CompareAndSwap(head, tail+1-size) {
			eq.dropped.Add(1)
		}
		return
	}
}

// Consume drains published events in FIFO order
// Stops at the first slot a producer has claimed but not yet written
func (eq *EventQueue) Consume() []Event {
	size := uint64(len(eq.slots))
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		start, n := head, tail-head
		if n > size {
			start, n = tail-size, size
		}

		out := make([]Event, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (start + i) & eq.mask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.slots[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, start+uint64(len(out))) {
			if skipped := start - head; skipped > 0 {
				eq.dropped.Add(skipped)
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate number of unread events
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if size := uint64(len(eq.slots)); n > size {
		n = size
	}
	return int(n)
}

// Dropped returns how many unread events were overwritten since creation
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
