package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/events"
	"github.com/lixenwraith/showcase/input"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// Start queues the load event, called once before the first frame
func (c *Context) Start() {
	c.push(events.EventLoad, nil)
}

// Run drives the session until quit, ctx cancellation or screen shutdown
// Input, timer callbacks and frames are serialized on the calling goroutine
func (c *Context) Run(ctx context.Context) error {
	if c.loop == nil {
		return ErrNoLoop
	}

	evCh := make(chan tcell.Event, constants.InputBufferSize)
	core.Go(func() { c.pollInput(evCh) })

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	c.Start()
	c.Frame()

	for !c.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			c.HandleEvent(ev)
		case fn := <-c.loop.C():
			fn()
		case <-ticker.C:
			c.Frame()
		}
	}
	return nil
}

// pollInput forwards terminal events until the screen is finalized
func (c *Context) pollInput(out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := c.Screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-c.done:
			return
		}
	}
}

// HandleEvent parses a terminal event and applies the resulting intent
func (c *Context) HandleEvent(ev tcell.Event) {
	if intent := c.Input.Process(ev); intent != nil {
		c.HandleIntent(intent)
	}
}

// HandleIntent applies one semantic action
// Scrolling moves the page at once, everything else goes through the event queue
func (c *Context) HandleIntent(in *input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		c.quit = true

	case input.IntentToggleMute:
		muted := c.Sound.ToggleMute()
		c.muted.Store(muted)
		c.Log.Debug("audio mute toggled", zap.Bool("muted", muted))

	case input.IntentResize:
		c.push(events.EventResize, &events.ResizePayload{Width: in.Width, Height: in.Height})

	case input.IntentScroll:
		c.scrollBy(int(in.ScrollDir) * in.Count)

	case input.IntentScrollPage:
		c.scrollBy(int(in.ScrollDir) * max(1, c.Height-constants.HeaderHeight-1))

	case input.IntentScrollTop:
		c.smoothScroll(0)

	case input.IntentScrollBottom:
		c.smoothScroll(c.Doc.MaxScroll(c.Height))

	case input.IntentJumpSection:
		nav := c.Doc.Content.Nav
		if in.Count >= 0 && in.Count < len(nav) {
			c.push(events.EventScrollTo, &events.ScrollToPayload{Target: nav[in.Count].Target})
		}

	case input.IntentFocusNext:
		c.push(events.EventKey, &events.KeyPayload{Key: events.NavTab})
	case input.IntentFocusPrev:
		c.push(events.EventKey, &events.KeyPayload{Key: events.NavBackTab})
	case input.IntentCardNext:
		c.push(events.EventKey, &events.KeyPayload{Key: events.NavRight})
	case input.IntentCardPrev:
		c.push(events.EventKey, &events.KeyPayload{Key: events.NavLeft})
	case input.IntentActivate:
		c.push(events.EventKey, &events.KeyPayload{Key: events.NavActivate})

	case input.IntentMouseMove:
		c.pointerMove(in.X, in.Y)

	case input.IntentMouseDown:
		c.pointerMove(in.X, in.Y)
		c.pressID = c.Doc.HoverID

	case input.IntentMouseClick:
		c.pointerMove(in.X, in.Y)
		pressed := c.pressID
		c.pressID = ""
		// Press and release must land on the same element
		if e := c.Doc.HitTest(in.X, in.Y); e != nil && e.ID == pressed {
			x, y := c.pageCoords(e, in.X, in.Y)
			c.push(events.EventClick, &events.PointerPayload{ElementID: e.ID, X: x, Y: y})
		}
	}
}

// scrollBy is a user scroll, it cancels any smooth scroll in flight
func (c *Context) scrollBy(rows int) {
	c.Scroller.Stop()
	c.setScroll(c.Doc.ScrollY + rows)
}

func (c *Context) smoothScroll(to int) {
	to = c.Doc.ClampScroll(to, c.Height)
	if c.Config.Motion.Reduced {
		c.Scroller.Stop()
		c.setScroll(to)
		return
	}
	c.Scroller.Start(c.Doc.ScrollY, to, c.Scheduler.Now(), c.Config.Scroll.Duration)
}

// pointerMove emits leave/enter on hover changes and a move for the element under the pointer
func (c *Context) pointerMove(sx, sy int) {
	c.pointer = core.Point{X: sx, Y: sy}
	c.hasPointer = true
	e := c.Doc.HitTest(sx, sy)
	id := ""
	if e != nil {
		id = e.ID
	}
	if id != c.Doc.HoverID {
		if c.Doc.HoverID != "" {
			c.push(events.EventMouseLeave, &events.PointerPayload{ElementID: c.Doc.HoverID, X: sx, Y: c.Doc.ToPage(sy)})
		}
		c.Doc.HoverID = id
		if e != nil {
			x, y := c.pageCoords(e, sx, sy)
			c.push(events.EventMouseEnter, &events.PointerPayload{ElementID: id, X: x, Y: y})
		}
	}
	if e != nil {
		x, y := c.pageCoords(e, sx, sy)
		c.push(events.EventMouseMove, &events.PointerPayload{ElementID: id, X: x, Y: y})
	}
}

// pageCoords maps a screen cell into the coordinate space of e
func (c *Context) pageCoords(e *page.Element, sx, sy int) (int, int) {
	if e.Fixed {
		return sx, sy
	}
	return sx, c.Doc.ToPage(sy)
}

// Frame advances smooth scrolling, dispatches queued events and draws
func (c *Context) Frame() {
	now := c.Scheduler.Now()
	if c.Scroller.Active() {
		y, _ := c.Scroller.Step(now)
		c.setScroll(y)
	}
	c.Dispatch()
	c.Orchestrator.RenderFrame(render.NewRenderContext(
		c.Doc, now, c.Width, c.Height,
		c.Config.Reveal.Transition, c.Config.Hero.Duration,
	))
	c.frames.Add(1)
}

// Dispatch delivers every queued event, including those pushed by handlers
func (c *Context) Dispatch() int {
	n := c.router.DispatchAll(c)
	c.dispatched.Add(int64(n))
	c.queueDrops.Store(int64(c.queue.Dropped()))
	return n
}
