package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Intent    IntentType
	ScrollDir ScrollDir
	Count     int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:   {Intent: IntentQuit},
			tcell.KeyEscape:  {Intent: IntentQuit},
			tcell.KeyUp:      {Intent: IntentScroll, ScrollDir: ScrollUp, Count: 1},
			tcell.KeyDown:    {Intent: IntentScroll, ScrollDir: ScrollDown, Count: 1},
			tcell.KeyPgUp:    {Intent: IntentScrollPage, ScrollDir: ScrollUp},
			tcell.KeyPgDn:    {Intent: IntentScrollPage, ScrollDir: ScrollDown},
			tcell.KeyHome:    {Intent: IntentScrollTop},
			tcell.KeyEnd:     {Intent: IntentScrollBottom},
			tcell.KeyLeft:    {Intent: IntentCardPrev},
			tcell.KeyRight:   {Intent: IntentCardNext},
			tcell.KeyTab:     {Intent: IntentFocusNext},
			tcell.KeyBacktab: {Intent: IntentFocusPrev},
			tcell.KeyEnter:   {Intent: IntentActivate},
		},

		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'j': {Intent: IntentScroll, ScrollDir: ScrollDown, Count: 1},
			'k': {Intent: IntentScroll, ScrollDir: ScrollUp, Count: 1},
			'h': {Intent: IntentCardPrev},
			'l': {Intent: IntentCardNext},
			' ': {Intent: IntentScrollPage, ScrollDir: ScrollDown},
			'g': {Intent: IntentScrollTop},
			'G': {Intent: IntentScrollBottom},
		},
	}
	for r := '1'; r <= '9'; r++ {
		kt.Runes[r] = KeyEntry{Intent: IntentJumpSection, Count: int(r - '1')}
	}
	return kt
}
