package pace

import (
	"sync"
	"time"

	"github.com/lixenwraith/showcase/clock"
)

// RateLimiter lets at most one call of fn through per interval
// Calls during cooldown are discarded, never queued or replayed
type RateLimiter[T any] struct {
	sched    clock.Scheduler
	interval time.Duration
	fn       func(T)

	mu     sync.Mutex
	active bool
}

// NewRateLimiter wraps fn with an interval cooldown
// A non-positive interval disables limiting
func NewRateLimiter[T any](sched clock.Scheduler, interval time.Duration, fn func(T)) *RateLimiter[T] {
	return &RateLimiter[T]{
		sched:    sched,
		interval: interval,
		fn:       fn,
	}
}

// Throttle returns fn limited to one call per interval
func Throttle[T any](sched clock.Scheduler, interval time.Duration, fn func(T)) func(T) {
	rl := NewRateLimiter(sched, interval, fn)
	return func(arg T) { rl.Call(arg) }
}

// Call executes fn(arg) synchronously unless in cooldown
// Returns true if fn ran
func (r *RateLimiter[T]) Call(arg T) bool {
	if r.interval <= 0 {
		r.fn(arg)
		return true
	}

	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return false
	}
	r.active = true
	r.sched.AfterFunc(r.interval, r.release)
	r.mu.Unlock()

	r.fn(arg)
	return true
}

// Active reports whether the limiter is in cooldown
func (r *RateLimiter[T]) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *RateLimiter[T]) release() {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()
}
