package constants

import "time"

// Page Loop & Engine Timing
const (
	// FrameUpdateInterval paces rendering and animation steps (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the page event ring
	EventQueueSize = 256

	// TimerBufferSize is the capacity of the loop scheduler delivery channel
	TimerBufferSize = 64

	// InputBufferSize is the capacity of the terminal event channel
	InputBufferSize = 100
)

// Pixel conversion for values expressed in CSS pixels
const (
	PixelsPerColumn = 8
	PixelsPerRow    = 24
)
