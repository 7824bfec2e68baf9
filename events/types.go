package events

import "time"

// EventType represents the type of page event
type EventType int

const (
	// EventLoad signals the page finished loading
	// Trigger: engine start | Consumer: LoadHandler | Payload: nil
	EventLoad EventType = iota

	// EventScroll signals a change of the scroll offset
	// Trigger: wheel, scroll keys, smooth scroll frames
	// Consumer: ScrollHandler (throttled), RevealHandler | Payload: *ScrollPayload
	EventScroll

	// EventScrollTo requests a smooth scroll to a section
	// Trigger: nav link click, digit keys, Enter on nav link
	// Consumer: ScrollHandler | Payload: *ScrollToPayload
	EventScrollTo

	// EventMouseEnter signals the pointer entered an element
	// Consumer: HoverHandler | Payload: *PointerPayload
	EventMouseEnter

	// EventMouseLeave signals the pointer left an element
	// Consumer: HoverHandler | Payload: *PointerPayload
	EventMouseLeave

	// EventMouseMove signals pointer motion inside an element
	// Consumer: HoverHandler | Payload: *PointerPayload
	EventMouseMove

	// EventClick signals a primary button press on an element
	// Consumer: ClickHandler | Payload: *PointerPayload
	EventClick

	// EventKey signals a navigation key
	// Consumer: FocusHandler | Payload: *KeyPayload
	EventKey

	// EventResize signals a terminal size change
	// Consumer: ResizeHandler (debounced) | Payload: *ResizePayload
	EventResize

	// EventContentChanged signals the page source file changed on disk
	// Trigger: config.Watcher | Consumer: ReloadHandler (debounced) | Payload: *ContentPayload
	EventContentChanged
)

var typeNames = map[EventType]string{
	EventLoad:           "Load",
	EventScroll:         "Scroll",
	EventScrollTo:       "ScrollTo",
	EventMouseEnter:     "MouseEnter",
	EventMouseLeave:     "MouseLeave",
	EventMouseMove:      "MouseMove",
	EventClick:          "Click",
	EventKey:            "Key",
	EventResize:         "Resize",
	EventContentChanged: "ContentChanged",
}

// String returns the event name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is one queued page event
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
