package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a controllable scheduler for tests
// Callbacks run synchronously inside Advance/Set, in deadline order
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m    *Manual
	when time.Time
	seq  uint64
	fn   func()
	done bool
}

// NewManual creates a manual scheduler starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn at Now()+d, non-positive d fires on the next Advance
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	mt := &manualTimer{m: m, when: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, mt)
	return mt
}

// Advance moves virtual time forward by d, firing every timer that comes due
func (m *Manual) Advance(d time.Duration) {
	m.Set(m.Now().Add(d))
}

// Set moves virtual time to t, firing due timers; moving backwards only fires already-due timers
func (m *Manual) Set(t time.Time) {
	for {
		m.mu.Lock()
		next := m.nextDueLocked(t)
		if next == nil {
			if t.After(m.now) {
				m.now = t
			}
			m.mu.Unlock()
			return
		}
		next.done = true
		m.removeLocked(next)
		if next.when.After(m.now) {
			m.now = next.when
		}
		m.mu.Unlock()

		// Outside the lock so callbacks may schedule or stop timers
		next.fn()
	}
}

// Pending returns the number of live timers
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *Manual) nextDueLocked(limit time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].when.Equal(m.timers[j].when) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].when.Before(m.timers[j].when)
	})
	first := m.timers[0]
	if first.when.After(limit) {
		return nil
	}
	return first
}

func (m *Manual) removeLocked(mt *manualTimer) {
	for i, t := range m.timers {
		if t == mt {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (mt *manualTimer) Stop() bool {
	mt.m.mu.Lock()
	defer mt.m.mu.Unlock()
	if mt.done {
		return false
	}
	mt.done = true
	mt.m.removeLocked(mt)
	return true
}
