package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/audio"
	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/events"
	"github.com/lixenwraith/showcase/page"
)

func (c *Context) registerHandlers() {
	on := func(t events.EventType, fn func(*Context, events.Event)) {
		c.router.Register(events.HandlerFunc[*Context]{Types: []events.EventType{t}, Fn: fn})
	}
	on(events.EventLoad, (*Context).handleLoad)
	on(events.EventScroll, (*Context).handleScroll)
	on(events.EventScrollTo, (*Context).handleScrollTo)
	on(events.EventMouseEnter, (*Context).handleEnter)
	on(events.EventMouseLeave, (*Context).handleLeave)
	on(events.EventMouseMove, (*Context).handleMove)
	on(events.EventClick, (*Context).handleClick)
	on(events.EventKey, (*Context).handleKey)
	on(events.EventResize, (*Context).handleResize)
	on(events.EventContentChanged, (*Context).handleContentChanged)
}

// handleLoad marks the page loaded and schedules the hero entrance
func (c *Context) handleLoad(_ events.Event) {
	if c.Doc.Loaded {
		return
	}
	c.Doc.Loaded = true
	c.applyScroll(c.Doc.ScrollY)
	if !c.Config.Motion.Reduced {
		c.Scheduler.AfterFunc(c.Config.Hero.Delay, c.startHero)
	}
	c.updateReveal()
	c.Log.Debug("page loaded", zap.Int("scroll_y", c.Doc.ScrollY))
}

func (c *Context) startHero() {
	hero := c.Doc.Element("hero-content")
	if hero == nil || hero.Style.Animation != "" {
		return
	}
	hero.Style.Animation = page.AnimFadeInUp
	hero.Style.AnimationStart = c.Scheduler.Now()
}

// handleScroll runs the throttled scroll effects and the visibility check
func (c *Context) handleScroll(ev events.Event) {
	p, ok := ev.Payload.(*events.ScrollPayload)
	if !ok {
		return
	}
	if c.scrollLimiter.Call(p.ScrollY) {
		c.scrollPassed.Add(1)
	} else {
		c.scrollDrop.Add(1)
	}
	c.scrollSettle.Call(p.ScrollY)
	c.updateReveal()
	if c.hasPointer {
		c.pointerMove(c.pointer.X, c.pointer.Y)
	}
}

// applyScroll is the throttled scroll listener body
func (c *Context) applyScroll(scrollY int) {
	c.Bindings.ApplyAll(effect.OnScroll, c.Doc, effect.Input{Now: c.Scheduler.Now(), ScrollY: scrollY})
	c.scrollGauge.Set(float64(scrollY))
	c.appliedScroll = scrollY
}

// settleScroll applies the resting offset once a burst goes quiet
func (c *Context) settleScroll(scrollY int) {
	if scrollY == c.appliedScroll {
		return
	}
	c.applyScroll(scrollY)
	c.scrollSettled.Add(1)
}

func (c *Context) updateReveal() {
	n := c.Trigger.Update(c.Doc.Viewport(c.Width, c.Height))
	if n > 0 && c.Doc.Loaded {
		c.Sound.Play(audio.SoundReveal)
	}
}

// handleScrollTo starts a smooth scroll to a section top
func (c *Context) handleScrollTo(ev events.Event) {
	p, ok := ev.Payload.(*events.ScrollToPayload)
	if !ok {
		return
	}
	top, found := c.Doc.SectionTop(p.Target)
	if !found {
		c.Log.Debug("scroll target not found", zap.String("target", p.Target))
		return
	}
	to := c.Doc.ClampScroll(top, c.Height)
	if c.Config.Motion.Reduced {
		c.Scroller.Stop()
		c.setScroll(to)
		return
	}
	c.Scroller.Start(c.Doc.ScrollY, to, c.Scheduler.Now(), c.Config.Scroll.Duration)
}

func (c *Context) pointer(ev events.Event) (*page.Element, effect.Input, bool) {
	p, ok := ev.Payload.(*events.PointerPayload)
	if !ok {
		return nil, effect.Input{}, false
	}
	e := c.Doc.Element(p.ElementID)
	if e == nil {
		return nil, effect.Input{}, false
	}
	return e, effect.Input{Now: c.Scheduler.Now(), ScrollY: c.Doc.ScrollY, X: p.X, Y: p.Y}, true
}

func (c *Context) handleEnter(ev events.Event) {
	e, in, ok := c.pointer(ev)
	if !ok {
		return
	}
	e.Style.Hovered = true
	c.Bindings.Apply(effect.OnEnter, c.Doc, e, in)
}

func (c *Context) handleLeave(ev events.Event) {
	e, in, ok := c.pointer(ev)
	if !ok {
		return
	}
	e.Style.Hovered = false
	c.Bindings.Apply(effect.OnLeave, c.Doc, e, in)
}

func (c *Context) handleMove(ev events.Event) {
	e, in, ok := c.pointer(ev)
	if !ok {
		return
	}
	c.Bindings.Apply(effect.OnMove, c.Doc, e, in)
}

// handleClick runs the click effect and follows in-page links
func (c *Context) handleClick(ev events.Event) {
	e, in, ok := c.pointer(ev)
	if !ok {
		return
	}
	if c.Bindings.Apply(effect.OnClick, c.Doc, e, in) {
		c.Sound.Play(audio.SoundClick)
	}
	if e.Target != "" {
		c.push(events.EventScrollTo, &events.ScrollToPayload{Target: e.Target})
	}
}

// handleKey moves focus or activates the focused element
func (c *Context) handleKey(ev events.Event) {
	p, ok := ev.Payload.(*events.KeyPayload)
	if !ok {
		return
	}
	switch p.Key {
	case events.NavLeft, events.NavRight:
		if id, moved := effect.CycleCards(c.Doc.Cards(), c.Doc.FocusID, p.Key == events.NavRight); moved {
			c.focus(id)
		}
	case events.NavTab, events.NavBackTab:
		c.focus(effect.NextFocusable(c.Doc.Focusables(), c.Doc.FocusID, p.Key == events.NavBackTab))
	case events.NavActivate:
		e := c.Doc.Focused()
		if e == nil {
			return
		}
		// Keyboard activation is a click at the element centre
		x, y := e.Area.X+e.Area.Width/2, e.Area.Y+e.Area.Height/2
		c.push(events.EventClick, &events.PointerPayload{ElementID: e.ID, X: x, Y: y})
	}
}

func (c *Context) focus(id string) {
	if id == "" || id == c.Doc.FocusID {
		return
	}
	c.Doc.SetFocus(id)
	e := c.Doc.Focused()
	if e == nil {
		return
	}
	c.Sound.Play(audio.SoundFocus)
	c.scrollIntoView(e)
}

// scrollIntoView jumps the minimum distance to show e below the header
func (c *Context) scrollIntoView(e *page.Element) {
	if e.Fixed {
		return
	}
	top := c.Doc.ScrollY + constants.HeaderHeight
	bottom := c.Doc.ScrollY + c.Height
	switch {
	case e.Area.Y < top:
		c.Scroller.Stop()
		c.setScroll(e.Area.Y - constants.HeaderHeight)
	case e.Area.Bottom() > bottom:
		c.Scroller.Stop()
		c.setScroll(e.Area.Bottom() - c.Height)
	}
}

// handleResize resizes the frame buffer now and relayouts after the burst settles
func (c *Context) handleResize(ev events.Event) {
	p, ok := ev.Payload.(*events.ResizePayload)
	if !ok {
		return
	}
	c.Width, c.Height = p.Width, p.Height
	c.Orchestrator.Resize(p.Width, p.Height)
	c.resizeDebouncer.Call(*p)
}

func (c *Context) relayout(p events.ResizePayload) {
	c.resizeFired.Add(1)
	c.Doc.Relayout(p.Width)
	if y := c.Doc.ClampScroll(c.Doc.ScrollY, c.Height); y != c.Doc.ScrollY {
		c.setScroll(y)
	}
	c.updateReveal()
	c.Log.Debug("relayout", zap.Int("width", p.Width), zap.Int("page_height", c.Doc.Height))
}

func (c *Context) handleContentChanged(ev events.Event) {
	p, ok := ev.Payload.(*events.ContentPayload)
	if !ok {
		return
	}
	c.reloadDebouncer.Call(p.Path)
}

// reload rebuilds the document from path, keeping reveals, scroll and focus
// A page that fails to parse leaves the current document in place
func (c *Context) reload(path string) {
	content, err := page.Load(path)
	if err != nil {
		c.Log.Warn("page reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	next := page.New(content, c.Width)
	next.Adopt(c.Doc)
	next.ScrollY = next.ClampScroll(next.ScrollY, c.Height)
	c.Scroller.Stop()
	c.Doc = next

	c.Trigger.Disconnect()
	c.observeFadeIns()
	c.applyScroll(c.Doc.ScrollY)
	c.updateReveal()

	c.reloads.Add(1)
	c.Log.Info("page reloaded",
		zap.String("path", path),
		zap.Int("elements", len(next.Elements)),
		zap.Any("metrics", c.Status.Snapshot("content.", "reveal.")))
}

// setScroll moves the page and emits a scroll event when the offset changes
func (c *Context) setScroll(y int) {
	y = c.Doc.ClampScroll(y, c.Height)
	if y == c.Doc.ScrollY {
		return
	}
	c.Doc.ScrollY = y
	c.push(events.EventScroll, &events.ScrollPayload{ScrollY: y})
}
