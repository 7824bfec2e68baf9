package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

// Loop schedules callbacks on real time and delivers them through C
// The owner of the event loop must receive from C and invoke each func
type Loop struct {
	tp   TimeProvider
	fire chan func()
	done chan struct{}

	mu     sync.Mutex
	timers map[*loopTimer]struct{}
	closed bool
}

type loopTimer struct {
	loop  *Loop
	fn    func()
	state atomic.Int32
	t     *time.Timer
}

// NewLoop creates a loop scheduler with the given delivery buffer size
func NewLoop(buffer int) *Loop {
	return &Loop{
		tp:     NewMonotonicTimeProvider(),
		fire:   make(chan func(), buffer),
		done:   make(chan struct{}),
		timers: make(map[*loopTimer]struct{}),
	}
}

// Now returns real time
func (l *Loop) Now() time.Time {
	return l.tp.Now()
}

// C delivers expired callbacks to the loop goroutine
func (l *Loop) C() <-chan func() {
	return l.fire
}

// AfterFunc schedules fn to be delivered through C after d
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{loop: l, fn: fn}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		lt.state.Store(timerStopped)
		return lt
	}
	l.timers[lt] = struct{}{}
	lt.t = time.AfterFunc(d, lt.post)
	l.mu.Unlock()

	return lt
}

// Pending returns the number of timers not yet run or stopped
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Close stops all outstanding timers, callbacks already queued in C are discarded by their state check
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	close(l.done)

	for lt := range l.timers {
		lt.state.Store(timerStopped)
		lt.t.Stop()
	}
	clear(l.timers)
}

// post runs on the runtime timer goroutine and hands the callback to the loop
func (lt *loopTimer) post() {
	select {
	case lt.loop.fire <- lt.run:
	case <-lt.loop.done:
	}
}

// run executes on the loop goroutine
func (lt *loopTimer) run() {
	if !lt.state.CompareAndSwap(timerPending, timerFired) {
		return
	}
	lt.loop.forget(lt)
	lt.fn()
}

func (lt *loopTimer) Stop() bool {
	if !lt.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	if lt.t != nil {
		lt.t.Stop()
	}
	lt.loop.forget(lt)
	return true
}

func (l *Loop) forget(lt *loopTimer) {
	l.mu.Lock()
	delete(l.timers, lt)
	l.mu.Unlock()
}
