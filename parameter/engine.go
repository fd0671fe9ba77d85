package parameter

import "time"

// Game Loop & Engine Timing
const (
	// BaseTickInterval is the simulation tick interval at level 1
	BaseTickInterval = 200 * time.Millisecond

	// MinTickInterval is the floor of the tick interval regardless of level
	MinTickInterval = 80 * time.Millisecond

	// TickIntervalStep is the interval reduction per level above 1
	TickIntervalStep = 15 * time.Millisecond

	// SchedulerMaxBehindTicks is the number of intervals the tick deadline may lag before it is reset to now
	SchedulerMaxBehindTicks = 2

	// InboxSize is the capacity of the control loop inbox (input closures)
	InboxSize = 256
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
