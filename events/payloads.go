package events

// ScrollPayload carries the new scroll offset in rows
type ScrollPayload struct {
	ScrollY int
}

// ScrollToPayload names the section to scroll to
type ScrollToPayload struct {
	Target string
}

// PointerPayload carries the element and pointer position in page coordinates
type PointerPayload struct {
	ElementID string
	X, Y      int
}

// NavKey identifies a keyboard navigation intent
type NavKey int

const (
	NavNone NavKey = iota
	NavLeft
	NavRight
	NavTab
	NavBackTab
	NavActivate
)

// KeyPayload carries a navigation key
type KeyPayload struct {
	Key NavKey
}

// ResizePayload carries the new screen size
type ResizePayload struct {
	Width, Height int
}

// ContentPayload names the changed source file
type ContentPayload struct {
	Path string
}
