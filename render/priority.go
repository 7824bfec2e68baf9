package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityHero
	PrioritySections
	PriorityCards
	PriorityEffects
	PriorityHeader
	PriorityOverlay
)
