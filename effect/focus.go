package effect

import "github.com/lixenwraith/showcase/page"

// CycleCards returns the card to focus after an arrow key
// Only applies when a card is focused; wraps at both ends
func CycleCards(cards []*page.Element, focusedID string, forward bool) (string, bool) {
	idx := -1
	for i, c := range cards {
		if c.ID == focusedID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", false
	}
	var next int
	if forward {
		next = idx + 1
		if next >= len(cards) {
			next = 0
		}
	} else {
		next = idx - 1
		if next < 0 {
			next = len(cards) - 1
		}
	}
	return cards[next].ID, true
}

// NextFocusable returns the Tab / Shift-Tab target, wrapping at the ends
// With nothing focused, Tab starts at the first element and Shift-Tab at the last
func NextFocusable(order []*page.Element, focusedID string, backward bool) string {
	if len(order) == 0 {
		return ""
	}
	idx := -1
	for i, e := range order {
		if e.ID == focusedID {
			idx = i
			break
		}
	}
	switch {
	case idx == -1 && backward:
		return order[len(order)-1].ID
	case idx == -1:
		return order[0].ID
	case backward:
		return order[(idx-1+len(order))%len(order)].ID
	default:
		return order[(idx+1)%len(order)].ID
	}
}
