package page

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/core"
)

// build creates the element tree for content, areas are set by layout
func build(c *Content) []*Element {
	var els []*Element
	add := func(e *Element) *Element {
		if e.AriaRole == "" {
			e.TabIndex = -1
		}
		e.Style.ResetTransform()
		els = append(els, e)
		return e
	}

	add(&Element{ID: "header", Role: RoleHeader, Fixed: true})
	add(&Element{ID: "logo", Role: RoleLogo, Title: c.Logo, Fixed: true})
	for _, l := range c.Nav {
		add(&Element{
			ID: "nav-" + l.Target, Role: RoleNavLink, Title: l.Label, Target: l.Target, Fixed: true,
			AriaRole: "link", AriaLabel: l.Label,
		})
	}

	add(&Element{ID: "hero", Role: RoleHero})
	add(&Element{ID: "hero-bg", Role: RoleHeroBackground})
	add(&Element{ID: "hero-content", Role: RoleHeroContent, Title: c.Hero.Headline, Lines: []string{c.Hero.Tagline}})
	if c.Hero.CTA.Label != "" {
		add(&Element{
			ID: "cta", Role: RoleCTA, Title: c.Hero.CTA.Label, Target: c.Hero.CTA.Target,
			AriaRole: "button", AriaLabel: c.Hero.CTA.Label,
		})
	}

	cardNo := 0
	for _, s := range c.Sections {
		add(&Element{ID: s.ID, Role: RoleSection, Title: s.Title})
		if s.Title != "" {
			add(&Element{ID: s.ID + "-title", Role: RoleSectionTitle, Title: s.Title, FadeIn: s.FadeIn})
		}
		for i, body := range s.Body {
			add(&Element{ID: fmt.Sprintf("%s-text-%d", s.ID, i), Role: RoleText, Lines: []string{body}, FadeIn: s.FadeIn})
		}
		for i, card := range s.Cards {
			cardNo++
			add(&Element{
				ID: fmt.Sprintf("%s-card-%d", s.ID, i), Role: RoleProjectCard,
				Title: card.Title, Lines: []string{card.Body}, Tags: card.Tags, FadeIn: s.FadeIn,
				AriaRole: "button", AriaLabel: fmt.Sprintf("Project card %d", cardNo),
			})
		}
	}

	if c.Footer != "" {
		add(&Element{ID: "footer", Role: RoleFooter, Lines: []string{c.Footer}})
	}
	return els
}

// layout assigns areas for the given screen width and returns the page height
func (d *Document) layout(width int) int {
	width = max(width, constants.CardMinWidth+2*constants.PagePaddingX)
	d.Width = width

	cw := min(width-2*constants.PagePaddingX, constants.ContentMaxWide)
	x0 := (width - cw) / 2

	d.layoutHeader(width)

	heroH := constants.HeaderHeight + constants.HeroHeight
	y := 0
	var section *Element
	var sectionCards []*Element

	flushCards := func() {
		if len(sectionCards) == 0 {
			return
		}
		y = layoutGrid(sectionCards, x0, y, cw)
		sectionCards = nil
	}
	closeSection := func() {
		flushCards()
		if section != nil {
			section.Area.Height = y - section.Area.Y
			y += constants.SectionGap
		}
	}

	for _, e := range d.Elements {
		if e.Fixed {
			continue
		}
		switch e.Role {
		case RoleHero, RoleHeroBackground:
			e.Area = core.Area{X: 0, Y: 0, Width: width, Height: heroH}
			y = heroH + constants.SectionGap
		case RoleHeroContent:
			e.Area = core.Area{X: x0, Y: constants.HeaderHeight + 3, Width: cw, Height: 3}
		case RoleCTA:
			w := runewidth.StringWidth(e.Title) + 6
			e.Area = core.Area{X: Center(width, w), Y: constants.HeaderHeight + 7, Width: w, Height: 3}
		case RoleSection:
			closeSection()
			section = e
			e.Area = core.Area{X: x0, Y: y, Width: cw}
		case RoleSectionTitle:
			flushCards()
			e.Area = core.Area{X: x0, Y: y, Width: cw, Height: 2}
			y += 2
		case RoleText:
			flushCards()
			lines := Wrap(strings.Join(e.Lines, " "), cw)
			e.Area = core.Area{X: x0, Y: y, Width: cw, Height: len(lines)}
			y += len(lines) + 1
		case RoleProjectCard:
			sectionCards = append(sectionCards, e)
		case RoleFooter:
			closeSection()
			section = nil
			lines := Wrap(strings.Join(e.Lines, " "), cw)
			e.Area = core.Area{X: 0, Y: y, Width: width, Height: len(lines) + 2}
			y += e.Area.Height
		}
	}
	closeSection()
	return y
}

func (d *Document) layoutHeader(width int) {
	x := width - constants.PagePaddingX
	var navs []*Element
	for _, e := range d.Elements {
		switch e.Role {
		case RoleHeader:
			e.Area = core.Area{X: 0, Y: 0, Width: width, Height: constants.HeaderHeight}
		case RoleLogo:
			e.Area = core.Area{X: constants.PagePaddingX, Y: 1, Width: runewidth.StringWidth(e.Title) + 2, Height: 1}
		case RoleNavLink:
			navs = append(navs, e)
		}
	}
	// Right-aligned, laid out from the last link backwards
	for i := len(navs) - 1; i >= 0; i-- {
		w := runewidth.StringWidth(navs[i].Title) + 2
		x -= w
		navs[i].Area = core.Area{X: x, Y: 1, Width: w, Height: 1}
		x -= 1
	}
}

// layoutGrid places cards in as many columns as fit and returns the next free row
func layoutGrid(cards []*Element, x0, y, cw int) int {
	cols := max(1, (cw+constants.CardGap)/(constants.CardMinWidth+constants.CardGap))
	cols = min(cols, len(cards))
	cardW := (cw - (cols-1)*constants.CardGap) / cols

	for i, c := range cards {
		col := i % cols
		row := i / cols
		c.Area = core.Area{
			X:      x0 + col*(cardW+constants.CardGap),
			Y:      y + row*(constants.CardHeight+1),
			Width:  cardW,
			Height: constants.CardHeight,
		}
	}
	rows := (len(cards) + cols - 1) / cols
	return y + rows*(constants.CardHeight+1)
}
