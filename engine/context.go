// Package engine owns the page session: it builds every effect instance at
// init, routes input through the event queue on a single loop goroutine and
// tears everything down on Close.
package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/audio"
	"github.com/lixenwraith/showcase/clock"
	"github.com/lixenwraith/showcase/config"
	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/events"
	"github.com/lixenwraith/showcase/input"
	"github.com/lixenwraith/showcase/pace"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
	"github.com/lixenwraith/showcase/render/renderers"
	"github.com/lixenwraith/showcase/reveal"
	"github.com/lixenwraith/showcase/status"
)

// ErrNoLoop is returned by Run when the context was built on a non-loop scheduler
var ErrNoLoop = errors.New("engine: scheduler does not deliver through a loop")

// Options configures a new Context
type Options struct {
	Config  *config.Config // Defaults when nil
	Content *page.Content  // Built-in page when nil
	Screen  tcell.Screen   // Initialized by the caller, required

	// Scheduler defaults to a clock.Loop drained by Run
	Scheduler clock.Scheduler
	// Sound defaults to audio.Silent
	Sound audio.Player
	// Probe overrides the terminal capability check
	Probe reveal.Probe
	Log   *zap.Logger
}

// Context holds the page session
type Context struct {
	// ===== Immutable After Init =====
	// Set once during NewContext

	Config       *config.Config
	Log          *zap.Logger
	Screen       tcell.Screen
	Scheduler    clock.Scheduler
	Trigger      *reveal.Trigger
	Bindings     effect.Bindings
	Sound        audio.Player
	Status       *status.Registry
	Input        *input.Machine
	Orchestrator *render.RenderOrchestrator

	loop   *clock.Loop // Nil when the scheduler is not a loop
	queue  *events.EventQueue
	router *events.Router[*Context]

	scrollLimiter   *pace.RateLimiter[int]
	scrollSettle    *pace.Debouncer[int] // Applies the offset the limiter dropped at the end of a burst
	resizeDebouncer *pace.Debouncer[events.ResizePayload]
	reloadDebouncer *pace.Debouncer[string]

	watcher *config.Watcher
	done    chan struct{}
	closed  atomic.Bool

	// ===== Main-Loop Exclusive =====
	// Accessed only from the loop goroutine

	Doc           *page.Document
	Scroller      effect.Scroller
	Width, Height int
	quit          bool

	// Last pointer cell, hit-tested again when the page moves under it
	pointer    core.Point
	hasPointer bool
	pressID    string // Element under the last left press

	appliedScroll int // Offset the scroll listener last ran with

	// ===== Cached Metrics =====

	frames        *atomic.Int64
	dispatched    *atomic.Int64
	scrollPassed  *atomic.Int64
	scrollDrop    *atomic.Int64
	scrollSettled *atomic.Int64
	queueDrops    *atomic.Int64
	resizeFired   *atomic.Int64
	reloads       *atomic.Int64
	revealed      *atomic.Int64
	fallback      *atomic.Bool
	muted         *atomic.Bool
	scrollGauge   *status.AtomicFloat
}

// NewContext builds the session for an initialized screen
func NewContext(opts Options) (*Context, error) {
	if opts.Screen == nil {
		return nil, errors.New("engine: screen is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	content := opts.Content
	if content == nil {
		var err error
		if content, err = page.Load(""); err != nil {
			return nil, fmt.Errorf("built-in page: %w", err)
		}
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	c := &Context{
		Config:  cfg,
		Log:     log,
		Screen:  opts.Screen,
		Sound:   opts.Sound,
		Status:  status.NewRegistry(),
		Input:   input.NewMachine(),
		Trigger: reveal.NewTrigger(log.Named("reveal")),
		queue:   events.NewEventQueue(constants.EventQueueSize),
		done:    make(chan struct{}),
	}
	if c.Sound == nil {
		c.Sound = audio.Silent{}
	}

	c.Scheduler = opts.Scheduler
	if c.Scheduler == nil {
		c.loop = clock.NewLoop(constants.TimerBufferSize)
		c.Scheduler = c.loop
	} else if l, ok := c.Scheduler.(*clock.Loop); ok {
		c.loop = l
	}

	c.initMetrics()
	if m, ok := c.Sound.(interface{ Muted() bool }); ok {
		c.muted.Store(m.Muted())
	}

	c.Width, c.Height = c.Screen.Size()
	c.Doc = page.New(content, c.Width)
	c.Bindings = effect.NewBindings(cfg.EffectParams(), c.Scheduler)

	c.scrollLimiter = pace.NewRateLimiter(c.Scheduler, cfg.Throttle.Scroll, c.applyScroll)
	c.scrollSettle = pace.NewDebouncer(c.Scheduler, cfg.Throttle.Scroll, false, c.settleScroll)
	c.resizeDebouncer = pace.NewDebouncer(c.Scheduler, cfg.Debounce.Resize, false, c.relayout)
	c.reloadDebouncer = pace.NewDebouncer(c.Scheduler, cfg.Debounce.Reload, false, c.reload)

	c.router = events.NewRouter[*Context](c.queue)
	c.registerHandlers()

	c.Orchestrator = render.NewRenderOrchestrator(c.Screen)
	renderers.RegisterAll(c.Orchestrator)

	c.observeFadeIns()
	probe := opts.Probe
	if probe == nil {
		probe = c.capabilityProbe
	}
	c.Trigger.Probe(probe)
	c.fallback.Store(c.Trigger.InFallback())

	log.Info("page session ready",
		zap.Int("width", c.Width),
		zap.Int("height", c.Height),
		zap.Int("elements", len(c.Doc.Elements)),
		zap.Bool("reveal_fallback", c.Trigger.InFallback()))
	return c, nil
}

func (c *Context) initMetrics() {
	c.frames = c.Status.Counters.Get("engine.frames")
	c.dispatched = c.Status.Counters.Get("engine.events")
	c.scrollPassed = c.Status.Counters.Get("pace.scroll.passed")
	c.scrollDrop = c.Status.Counters.Get("pace.scroll.dropped")
	c.scrollSettled = c.Status.Counters.Get("pace.scroll.settled")
	c.queueDrops = c.Status.Counters.Get("events.dropped")
	c.resizeFired = c.Status.Counters.Get("debounce.resize.fired")
	c.reloads = c.Status.Counters.Get("content.reloads")
	c.revealed = c.Status.Counters.Get("reveal.revealed")
	c.fallback = c.Status.Flags.Get("reveal.fallback")
	c.muted = c.Status.Flags.Get("audio.muted")
	c.scrollGauge = c.Status.Gauges.Get("page.scroll_y")
}

// capabilityProbe fails on terminals without 256 colors or when reduced motion is requested
func (c *Context) capabilityProbe() error {
	if c.Config.Motion.Reduced {
		return fmt.Errorf("%w: reduced motion requested", reveal.ErrCapabilityUnavailable)
	}
	if n := c.Screen.Colors(); n < 256 {
		return fmt.Errorf("%w: terminal reports %d colors", reveal.ErrCapabilityUnavailable, n)
	}
	return nil
}

// observeFadeIns registers every hidden fade-in element with the trigger
func (c *Context) observeFadeIns() {
	opts := c.Config.RevealOptions()
	for _, e := range c.Doc.FadeIns() {
		if e.Style.Visible {
			continue
		}
		c.Trigger.Observe(e, c.revealFunc(e), opts)
	}
}

func (c *Context) revealFunc(e *page.Element) func() {
	return func() {
		if e.Style.Visible {
			return
		}
		e.Style.Visible = true
		// Zero time renders fully opaque, fallback skips the transition
		if !c.Trigger.InFallback() {
			e.Style.RevealedAt = c.Scheduler.Now()
		}
		c.revealed.Add(1)
	}
}

// Watch starts reloading the page when path changes on disk
func (c *Context) Watch(path string) error {
	w, err := config.NewWatcher(path, c.Log.Named("watch"), func(p string) {
		c.push(events.EventContentChanged, &events.ContentPayload{Path: p})
	})
	if err != nil {
		return err
	}
	c.watcher = w
	return nil
}

// Quit reports whether the user asked to leave
func (c *Context) Quit() bool {
	return c.quit
}

// Close stops timers, the watcher and audio, idempotent
// The screen belongs to the caller
func (c *Context) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	close(c.done)
	if c.watcher != nil {
		c.watcher.Close()
	}
	c.Trigger.Disconnect()
	if c.loop != nil {
		c.loop.Close()
	}
	if sm, ok := c.Sound.(interface{ Cleanup() }); ok {
		sm.Cleanup()
	}
	c.Log.Info("page session closed", zap.Any("metrics", c.Status.Snapshot()))
}

func (c *Context) push(t events.EventType, payload any) {
	c.queue.Push(events.Event{Type: t, Payload: payload, Timestamp: c.Scheduler.Now()})
}
