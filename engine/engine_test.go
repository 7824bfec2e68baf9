package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/showcase/asset"
	"github.com/lixenwraith/showcase/audio"
	"github.com/lixenwraith/showcase/clock"
	"github.com/lixenwraith/showcase/config"
	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/events"
	"github.com/lixenwraith/showcase/input"
	"github.com/lixenwraith/showcase/page"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	screenW = 100
	screenH = 30
)

type recorder struct {
	played []audio.SoundType
	muted  bool
}

func (r *recorder) Play(s audio.SoundType) { r.played = append(r.played, s) }
func (r *recorder) ToggleMute() bool       { r.muted = !r.muted; return r.muted }

func (r *recorder) count(s audio.SoundType) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

type harness struct {
	*Context
	clock  *clock.Manual
	sound  *recorder
	screen tcell.SimulationScreen
}

func newHarness(t *testing.T, mutate func(*config.Config), opts ...func(*Options)) *harness {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	h := &harness{clock: clock.NewManual(epoch), sound: &recorder{}, screen: s}
	o := Options{
		Config:    cfg,
		Screen:    s,
		Scheduler: h.clock,
		Sound:     h.sound,
		Probe:     func() error { return nil },
	}
	for _, fn := range opts {
		fn(&o)
	}
	c, err := NewContext(o)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	h.Context = c
	return h
}

// load delivers the load event and draws the first frame
func (h *harness) load() {
	h.Start()
	h.Frame()
}

// click presses and releases the left button on one cell
func (h *harness) click(x, y int) {
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: x, Y: y})
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: x, Y: y})
	h.Dispatch()
	assert.Empty(t, h.Doc.Ripples, "press alone does not click")
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: x, Y: y})
}

func counter(t *testing.T, c *Context, name string) int64 {
	t.Helper()
	require.True(t, c.Status.Counters.Has(name), "counter %s not registered", name)
	return c.Status.Counters.Get(name).Load()
}

func TestNewContextRequiresScreen(t *testing.T) {
	_, err := NewContext(Options{})
	assert.Error(t, err)
}

func TestLoadRevealsVisibleAndStartsHero(t *testing.T) {
	h := newHarness(t, nil)
	assert.False(t, h.Doc.Loaded)

	h.load()
	assert.True(t, h.Doc.Loaded)

	about := h.Doc.Element("about-title")
	require.NotNil(t, about)
	require.Less(t, about.Area.Y, screenH)
	assert.True(t, about.Style.Visible)
	assert.Equal(t, epoch, about.Style.RevealedAt)

	footer := h.Doc.FadeIns()
	last := footer[len(footer)-1]
	require.GreaterOrEqual(t, last.Area.Y, screenH)
	assert.False(t, last.Style.Visible)

	hero := h.Doc.Element("hero-content")
	assert.Empty(t, hero.Style.Animation)
	h.clock.Advance(h.Config.Hero.Delay)
	assert.Equal(t, page.AnimFadeInUp, hero.Style.Animation)
	assert.Equal(t, epoch.Add(h.Config.Hero.Delay), hero.Style.AnimationStart)
	assert.Positive(t, h.sound.count(audio.SoundReveal))
}

func TestLoadIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	h.Start()
	h.Dispatch()
	h.clock.Advance(time.Second)
	assert.Equal(t, epoch.Add(h.Config.Hero.Delay), h.Doc.Element("hero-content").Style.AnimationStart)
}

func TestScrollHandlerThrottled(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	header := h.Doc.Element("header")
	assert.Equal(t, 0.95, header.Style.BackgroundAlpha)

	for i := 0; i < 3; i++ {
		h.HandleIntent(&input.Intent{Type: input.IntentScroll, ScrollDir: input.ScrollDown, Count: 2})
	}
	h.Dispatch()
	assert.Equal(t, 6, h.Doc.ScrollY)
	assert.EqualValues(t, 1, counter(t, h.Context, "pace.scroll.passed"))
	assert.EqualValues(t, 2, counter(t, h.Context, "pace.scroll.dropped"))
	// Only the leading call ran, with scrollY 2
	assert.Equal(t, 0.95, header.Style.BackgroundAlpha)
	assert.Equal(t, 2*24*0.5, h.Doc.Element("hero-bg").Style.TranslateY)

	// The burst goes quiet and the resting offset is applied without further input
	h.clock.Advance(h.Config.Throttle.Scroll)
	assert.Equal(t, 0.98, header.Style.BackgroundAlpha)
	assert.Equal(t, 72.0, h.Doc.Element("hero-bg").Style.TranslateY)
	assert.EqualValues(t, 1, counter(t, h.Context, "pace.scroll.settled"))

	h.HandleIntent(&input.Intent{Type: input.IntentScroll, ScrollDir: input.ScrollDown, Count: 4})
	h.Dispatch()
	assert.Equal(t, 10, h.Doc.ScrollY)
	assert.Equal(t, 0.98, header.Style.BackgroundAlpha)
	assert.Equal(t, 120.0, h.Doc.Element("hero-bg").Style.TranslateY)

	// A lone scroll already ran on the leading edge, settling it again is a no-op
	h.clock.Advance(h.Config.Throttle.Scroll)
	assert.EqualValues(t, 1, counter(t, h.Context, "pace.scroll.settled"))
}

func TestScrollClampsAndRevealsEverything(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	h.HandleIntent(&input.Intent{Type: input.IntentScroll, ScrollDir: input.ScrollUp, Count: 5})
	h.Dispatch()
	assert.Equal(t, 0, h.Doc.ScrollY)

	h.scrollBy(10_000)
	h.Dispatch()
	assert.Equal(t, h.Doc.MaxScroll(screenH), h.Doc.ScrollY)

	// Walk the page in screen-sized steps so every element crosses the viewport
	h.setScroll(0)
	h.Dispatch()
	for y := 0; y <= h.Doc.MaxScroll(screenH); y += screenH / 2 {
		h.setScroll(y)
		h.Dispatch()
	}
	h.setScroll(h.Doc.MaxScroll(screenH))
	h.Dispatch()
	for _, e := range h.Doc.FadeIns() {
		assert.True(t, e.Style.Visible, e.ID)
	}
	assert.EqualValues(t, len(h.Doc.FadeIns()), counter(t, h.Context, "reveal.revealed"))
	assert.Zero(t, h.Trigger.Pending())
}

func TestNavClickSmoothScrolls(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	nav := h.Doc.Element("nav-projects")
	require.NotNil(t, nav)
	h.click(nav.Area.X, nav.Area.Y)
	h.Dispatch()
	require.True(t, h.Scroller.Active())

	top, ok := h.Doc.SectionTop("projects")
	require.True(t, ok)
	want := h.Doc.ClampScroll(top, screenH)
	assert.Equal(t, want, h.Scroller.Target())

	h.clock.Advance(h.Config.Scroll.Duration / 2)
	h.Frame()
	assert.Greater(t, h.Doc.ScrollY, 0)
	assert.Less(t, h.Doc.ScrollY, want)

	h.clock.Advance(h.Config.Scroll.Duration)
	h.Frame()
	assert.Equal(t, want, h.Doc.ScrollY)
	assert.False(t, h.Scroller.Active())
}

func TestUserScrollCancelsSmoothScroll(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	h.HandleIntent(&input.Intent{Type: input.IntentScrollBottom})
	require.True(t, h.Scroller.Active())

	h.HandleIntent(&input.Intent{Type: input.IntentScroll, ScrollDir: input.ScrollDown, Count: 1})
	assert.False(t, h.Scroller.Active())
	assert.Equal(t, 1, h.Doc.ScrollY)
}

func TestJumpSectionKeys(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	h.HandleIntent(&input.Intent{Type: input.IntentJumpSection, Count: 2})
	h.Dispatch()
	top, _ := h.Doc.SectionTop("contact")
	assert.Equal(t, h.Doc.ClampScroll(top, screenH), h.Scroller.Target())

	h.Scroller.Stop()
	h.HandleIntent(&input.Intent{Type: input.IntentJumpSection, Count: 8})
	h.Dispatch()
	assert.False(t, h.Scroller.Active())
}

func TestCTAClickRipple(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	cta := h.Doc.Element("cta")
	require.NotNil(t, cta)
	x, y := cta.Area.X+1, cta.Area.Y+1
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: x, Y: y})
	h.Dispatch()
	assert.Empty(t, h.Doc.Ripples, "press alone does not click")
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: x, Y: y})
	h.Dispatch()

	require.Len(t, h.Doc.Ripples, 1)
	r := h.Doc.Ripples[0]
	assert.Equal(t, "cta", r.Owner)
	assert.Equal(t, x, r.X)
	assert.Equal(t, y, r.Y)
	assert.Equal(t, max(cta.Area.Width, cta.Area.Height), r.Size)
	assert.Equal(t, 1, h.sound.count(audio.SoundClick))
	assert.True(t, h.Scroller.Active(), "cta links to projects")

	h.clock.Advance(h.Config.Ripple.Duration - time.Millisecond)
	assert.Len(t, h.Doc.Ripples, 1)
	h.clock.Advance(time.Millisecond)
	assert.Empty(t, h.Doc.Ripples)
}

func TestClickNeedsPressAndReleaseOnSameElement(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	cta := h.Doc.Element("cta")
	require.NotNil(t, cta)

	// Pressed on the button, released on empty page
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: cta.Area.X + 1, Y: cta.Area.Y + 1})
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: 0, Y: cta.Area.Y + 1})
	h.Dispatch()
	assert.Empty(t, h.Doc.Ripples)
	assert.Zero(t, h.sound.count(audio.SoundClick))

	// Pressed elsewhere, released on the button
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: 0, Y: cta.Area.Y + 1})
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: cta.Area.X + 1, Y: cta.Area.Y + 1})
	h.Dispatch()
	assert.Empty(t, h.Doc.Ripples)

	// Release with no press on record
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: cta.Area.X + 1, Y: cta.Area.Y + 1})
	h.Dispatch()
	assert.Empty(t, h.Doc.Ripples)

	// Dragging within the button still clicks
	h.HandleIntent(&input.Intent{Type: input.IntentMouseDown, X: cta.Area.X + 1, Y: cta.Area.Y + 1})
	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: cta.Area.X + 2, Y: cta.Area.Y + 1})
	h.HandleIntent(&input.Intent{Type: input.IntentMouseClick, X: cta.Area.X + 2, Y: cta.Area.Y + 1})
	h.Dispatch()
	require.Len(t, h.Doc.Ripples, 1)
	assert.Equal(t, cta.Area.X+2, h.Doc.Ripples[0].X)
}

func TestScrollUnderStillPointerMovesHover(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	cards := h.Doc.Cards()
	first := cards[0]
	var below *page.Element
	for _, c := range cards[1:] {
		if c.Area.X == first.Area.X && c.Area.Y > first.Area.Y {
			below = c
			break
		}
	}
	require.NotNil(t, below, "need a second card row")
	delta := below.Area.Y - first.Area.Y

	// Leave room to scroll one card row further
	start := min(first.Area.Y-constants.HeaderHeight, h.Doc.MaxScroll(screenH)-delta)
	require.GreaterOrEqual(t, start, 0)
	row := first.Area.Y - start
	require.Less(t, row, screenH)

	h.setScroll(start)
	h.Dispatch()
	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: first.Area.X, Y: row})
	h.Dispatch()
	require.Equal(t, first.ID, h.Doc.HoverID)
	require.True(t, first.Style.Hovered)

	// Wheel by one card row with the pointer left where it is
	h.HandleIntent(&input.Intent{Type: input.IntentScroll, ScrollDir: input.ScrollDown, Count: delta})
	h.Dispatch()
	require.Equal(t, start+delta, h.Doc.ScrollY)

	assert.False(t, first.Style.Hovered)
	assert.Empty(t, first.Style.Animation)
	assert.Zero(t, first.Style.RotateX)
	assert.Zero(t, first.Style.TranslateY)
	assert.Equal(t, below.ID, h.Doc.HoverID)
	assert.True(t, below.Style.Hovered)
}

func TestQueueOverflowCounted(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	for i := 0; i < constants.EventQueueSize+5; i++ {
		h.push(events.EventLoad, nil)
	}
	h.Dispatch()
	assert.EqualValues(t, 5, counter(t, h.Context, "events.dropped"))
}

func TestCardHoverLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	card := h.Doc.Cards()[0]
	h.setScroll(card.Area.Y - 5)
	h.Dispatch()
	require.Equal(t, card.Area.Y-5, h.Doc.ScrollY)

	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: card.Area.X, Y: 5})
	h.Dispatch()
	assert.Equal(t, card.ID, h.Doc.HoverID)
	assert.True(t, card.Style.Hovered)
	assert.Negative(t, card.Style.RotateX)
	assert.Positive(t, card.Style.RotateY)
	assert.Equal(t, -constants.CardLiftPx, card.Style.TranslateY)

	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: 0, Y: 1})
	h.Dispatch()
	assert.NotEqual(t, card.ID, h.Doc.HoverID)
	assert.False(t, card.Style.Hovered)
	assert.Zero(t, card.Style.RotateX)
	assert.Zero(t, card.Style.RotateY)
	assert.Zero(t, card.Style.TranslateY)
	assert.Empty(t, card.Style.Animation)
}

func TestLogoHover(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	logo := h.Doc.Element("logo")

	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: logo.Area.X, Y: logo.Area.Y})
	h.Dispatch()
	assert.Equal(t, constants.LogoScale, logo.Style.Scale)

	// Scrolling under a fixed element keeps it hovered
	h.setScroll(3)
	h.Dispatch()
	assert.Equal(t, "logo", h.Doc.HoverID)

	h.HandleIntent(&input.Intent{Type: input.IntentMouseMove, X: screenW / 2, Y: screenH / 2})
	h.Dispatch()
	assert.Equal(t, 1.0, logo.Style.Scale)
	assert.Zero(t, logo.Style.TranslateY)
}

func TestCardArrowCycle(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	cards := h.Doc.Cards()
	require.GreaterOrEqual(t, len(cards), 2)

	h.HandleIntent(&input.Intent{Type: input.IntentCardNext})
	h.Dispatch()
	assert.Empty(t, h.Doc.FocusID, "arrows only move focus between cards")

	h.Doc.SetFocus(cards[0].ID)
	h.HandleIntent(&input.Intent{Type: input.IntentCardNext})
	h.Dispatch()
	assert.Equal(t, cards[1].ID, h.Doc.FocusID)
	assert.True(t, cards[1].Style.Focused)
	assert.False(t, cards[0].Style.Focused)

	h.HandleIntent(&input.Intent{Type: input.IntentCardPrev})
	h.HandleIntent(&input.Intent{Type: input.IntentCardPrev})
	h.Dispatch()
	assert.Equal(t, cards[len(cards)-1].ID, h.Doc.FocusID)
	assert.Equal(t, 3, h.sound.count(audio.SoundFocus))

	// Focus scrolls the card below the header
	last := cards[len(cards)-1]
	assert.GreaterOrEqual(t, last.Area.Y, h.Doc.ScrollY+constants.HeaderHeight)
	assert.LessOrEqual(t, last.Area.Bottom(), h.Doc.ScrollY+screenH)
}

func TestTabAndActivateNavLink(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	h.HandleIntent(&input.Intent{Type: input.IntentFocusNext})
	h.Dispatch()
	first := h.Doc.Focusables()[0]
	assert.Equal(t, first.ID, h.Doc.FocusID)

	h.HandleIntent(&input.Intent{Type: input.IntentActivate})
	h.Dispatch()
	require.True(t, h.Scroller.Active())
	top, _ := h.Doc.SectionTop(first.Target)
	assert.Equal(t, h.Doc.ClampScroll(top, screenH), h.Scroller.Target())

	h.HandleIntent(&input.Intent{Type: input.IntentFocusPrev})
	h.Dispatch()
	focusables := h.Doc.Focusables()
	assert.Equal(t, focusables[len(focusables)-1].ID, h.Doc.FocusID)
}

func TestActivateCTARipplesAtCentre(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	h.Doc.SetFocus("cta")

	h.HandleIntent(&input.Intent{Type: input.IntentActivate})
	h.Dispatch()
	cta := h.Doc.Element("cta")
	require.Len(t, h.Doc.Ripples, 1)
	assert.Equal(t, cta.Area.X+cta.Area.Width/2, h.Doc.Ripples[0].X)
	assert.Equal(t, cta.Area.Y+cta.Area.Height/2, h.Doc.Ripples[0].Y)
}

func TestResizeDebounced(t *testing.T) {
	h := newHarness(t, nil)
	h.load()

	h.HandleIntent(&input.Intent{Type: input.IntentResize, Width: 60, Height: 20})
	h.HandleIntent(&input.Intent{Type: input.IntentResize, Width: 80, Height: 24})
	h.Dispatch()
	assert.Equal(t, 80, h.Orchestrator.Buffer().Width())
	assert.Equal(t, screenW, h.Doc.Width)
	assert.Zero(t, counter(t, h.Context, "debounce.resize.fired"))

	h.clock.Advance(h.Config.Debounce.Resize)
	assert.EqualValues(t, 1, counter(t, h.Context, "debounce.resize.fired"))
	assert.Equal(t, 80, h.Doc.Width)
	assert.Equal(t, 24, h.Height)
}

func TestReducedMotionFallsBack(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Motion.Reduced = true }, func(o *Options) { o.Probe = nil })

	assert.True(t, h.Trigger.InFallback())
	assert.True(t, h.Status.Flags.Get("reveal.fallback").Load())
	for _, e := range h.Doc.FadeIns() {
		assert.True(t, e.Style.Visible, e.ID)
		assert.True(t, e.Style.RevealedAt.IsZero(), e.ID)
	}

	h.load()
	h.clock.Advance(time.Second)
	assert.Empty(t, h.Doc.Element("hero-content").Style.Animation)

	h.HandleIntent(&input.Intent{Type: input.IntentJumpSection, Count: 1})
	h.Dispatch()
	top, _ := h.Doc.SectionTop("projects")
	assert.Equal(t, h.Doc.ClampScroll(top, screenH), h.Doc.ScrollY)
	assert.False(t, h.Scroller.Active())
}

func TestReloadKeepsReveals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(asset.DefaultPage), 0o644))

	h := newHarness(t, nil)
	h.load()
	require.True(t, h.Doc.Element("about-title").Style.Visible)
	h.setScroll(2)
	h.Dispatch()

	edited := strings.Replace(asset.DefaultPage, `title: "Mara Quill"`, `title: "Mara Quill II"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	for i := 0; i < 3; i++ {
		h.push(events.EventContentChanged, &events.ContentPayload{Path: path})
	}
	h.Dispatch()
	h.clock.Advance(h.Config.Debounce.Reload)

	assert.EqualValues(t, 1, counter(t, h.Context, "content.reloads"))
	assert.Equal(t, "Mara Quill II", h.Doc.Content.Title)
	assert.True(t, h.Doc.Element("about-title").Style.Visible)
	assert.Equal(t, 2, h.Doc.ScrollY)

	require.NoError(t, os.WriteFile(path, []byte("sections: ["), 0o644))
	doc := h.Doc
	h.push(events.EventContentChanged, &events.ContentPayload{Path: path})
	h.Dispatch()
	h.clock.Advance(h.Config.Debounce.Reload)
	assert.Same(t, doc, h.Doc)
	assert.EqualValues(t, 1, counter(t, h.Context, "content.reloads"))
}

func TestQuitAndMute(t *testing.T) {
	h := newHarness(t, nil)
	h.HandleIntent(&input.Intent{Type: input.IntentToggleMute})
	assert.True(t, h.sound.muted)
	assert.True(t, h.Status.Flags.Get("audio.muted").Load())

	assert.False(t, h.Quit())
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.True(t, h.Quit())
}

func TestFrameDrawsToScreen(t *testing.T) {
	h := newHarness(t, nil)
	h.load()
	assert.EqualValues(t, 1, counter(t, h.Context, "engine.frames"))

	logo := h.Doc.Element("logo")
	r, _, _, _ := h.screen.GetContent(logo.Area.X+1, logo.Area.Y)
	assert.Equal(t, []rune(logo.Title)[0], r)
}

func TestRunRequiresLoop(t *testing.T) {
	h := newHarness(t, nil)
	assert.ErrorIs(t, h.Run(context.Background()), ErrNoLoop)
}

func TestRunQuitsOnKey(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)

	c, err := NewContext(Options{Screen: s, Probe: func() error { return nil }})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Run(ctx))
	assert.True(t, c.Quit())
	assert.True(t, c.Doc.Loaded)
	assert.Positive(t, counter(t, c, "engine.frames"))
}

func TestCloseIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.Close()
	h.Close()
}
