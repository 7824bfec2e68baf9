// Package reveal implements the one-way viewport reveal trigger.
//
// Elements start not-yet-revealed. The first visibility notification in which
// an element intersects the margin-adjusted viewport by at least the threshold
// fraction fires its reveal callback and drops it from tracking, so it can
// never revert or fire again.
package reveal

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/vmath"
)

// ErrCapabilityUnavailable reports that the host cannot observe visibility or animate
var ErrCapabilityUnavailable = errors.New("visibility observation unavailable")

// Element is anything with bounds in page coordinates
type Element interface {
	Bounds() core.Area
}

// Probe reports whether the host supports observation and animation
// A nil return means supported
type Probe func() error

type entry struct {
	el       Element
	onReveal func()
	opts     Options
}

// Trigger tracks elements awaiting reveal
type Trigger struct {
	log *zap.Logger

	mu       sync.Mutex
	entries  []*entry
	fallback bool
	revealed int
}

// NewTrigger creates a trigger in observation mode
func NewTrigger(log *zap.Logger) *Trigger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trigger{log: log}
}

// Observe registers a one-shot reveal callback for el
// In fallback mode the callback runs immediately
func (t *Trigger) Observe(el Element, onReveal func(), opts Options) {
	t.mu.Lock()
	if t.fallback {
		t.revealed++
		t.mu.Unlock()
		onReveal()
		return
	}
	t.entries = append(t.entries, &entry{el: el, onReveal: onReveal, opts: opts})
	t.mu.Unlock()
}

// Unobserve stops tracking el without revealing it
func (t *Trigger) Unobserve(el Element) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e.el == el {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Disconnect drops every tracked element
func (t *Trigger) Disconnect() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()
}

// Update delivers a visibility notification for the given viewport
// Returns the number of elements revealed by this notification
func (t *Trigger) Update(viewport core.Area) int {
	t.mu.Lock()
	var due []func()
	kept := t.entries[:0]
	for _, e := range t.entries {
		if ratio, ok := intersection(e.el.Bounds(), viewport, e.opts.Margin); ok && meets(ratio, e.opts.Threshold) {
			due = append(due, e.onReveal)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped entries can be collected
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = kept
	t.revealed += len(due)
	t.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Probe runs the capability check, on failure every element is revealed at once
// The failure is logged and never returned to the caller
func (t *Trigger) Probe(probe Probe) {
	if probe == nil {
		return
	}
	if err := probe(); err != nil {
		t.Fallback(err)
	}
}

// Fallback switches to reveal-all mode and reveals everything tracked
func (t *Trigger) Fallback(reason error) {
	t.mu.Lock()
	already := t.fallback
	t.fallback = true
	pending := t.entries
	t.entries = nil
	t.revealed += len(pending)
	t.mu.Unlock()

	if !already {
		t.log.Warn("animations may not be fully supported, revealing all elements",
			zap.Error(reason),
			zap.Int("pending", len(pending)))
	}
	for _, e := range pending {
		e.onReveal()
	}
}

// InFallback reports whether the trigger is in reveal-all mode
func (t *Trigger) InFallback() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fallback
}

// Pending returns the number of tracked, unrevealed elements
func (t *Trigger) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Revealed returns the number of reveals performed so far
func (t *Trigger) Revealed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed
}

// Ratio exposes the visible fraction computation for diagnostics
func Ratio(bounds, viewport core.Area, margin Insets) float64 {
	r, _ := intersection(bounds, viewport, margin)
	return r
}

// intersection returns the visible fraction of bounds inside the adjusted viewport
// and whether the two intersect at all
func intersection(bounds, viewport core.Area, margin Insets) (float64, bool) {
	root := vmath.AreaExpand(viewport, margin.Top, margin.Right, margin.Bottom, margin.Left)
	if root.Size() == 0 {
		return 0, false
	}
	overlap, ok := vmath.AreaIntersect(bounds, root)
	if !ok {
		return 0, false
	}
	size := bounds.Size()
	if size == 0 {
		// Degenerate targets are fully visible when they touch the root
		return 1, true
	}
	if overlap.Size() == 0 {
		return 0, false
	}
	return float64(overlap.Size()) / float64(size), true
}

func meets(ratio, threshold float64) bool {
	if threshold <= 0 {
		return ratio > 0
	}
	return ratio >= threshold
}

// String describes the trigger state for logs
func (t *Trigger) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("reveal.Trigger{pending=%d revealed=%d fallback=%v}", len(t.entries), t.revealed, t.fallback)
}
