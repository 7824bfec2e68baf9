package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Page scrolling
	IntentScroll       // Arrows, j/k, wheel: ScrollDir * Count rows
	IntentScrollPage   // PgUp/PgDn/Space: ScrollDir pages
	IntentScrollTop    // Home, g
	IntentScrollBottom // End, G
	IntentJumpSection  // 1..9: Count is the nav link index

	// Focus
	IntentFocusNext // Tab
	IntentFocusPrev // Shift+Tab
	IntentCardNext  // Right arrow, l
	IntentCardPrev  // Left arrow, h
	IntentActivate  // Enter, Space on a focused element

	// Mouse
	IntentMouseMove  // Pointer motion, X/Y set
	IntentMouseDown  // Left press edge, X/Y set
	IntentMouseClick // Left release edge, X/Y is the release cell
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentToggleMute:   "toggle_mute",
	IntentResize:       "resize",
	IntentScroll:       "scroll",
	IntentScrollPage:   "scroll_page",
	IntentScrollTop:    "scroll_top",
	IntentScrollBottom: "scroll_bottom",
	IntentJumpSection:  "jump_section",
	IntentFocusNext:    "focus_next",
	IntentFocusPrev:    "focus_prev",
	IntentCardNext:     "card_next",
	IntentCardPrev:     "card_prev",
	IntentActivate:     "activate",
	IntentMouseMove:    "mouse_move",
	IntentMouseDown:    "mouse_down",
	IntentMouseClick:   "mouse_click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// ScrollDir for page scrolling
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type      IntentType
	ScrollDir ScrollDir
	Count     int // Rows for IntentScroll, index for IntentJumpSection
	X, Y      int // Screen cell for mouse intents
	Width     int // For IntentResize
	Height    int // For IntentResize
}
