package render

// RenderPriority determines render order; lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGrid
	PriorityItems
	PrioritySnake
	PriorityParticle
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
