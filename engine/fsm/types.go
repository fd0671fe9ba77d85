package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine
// C is the context passed to actions and guards, E the trigger type
type Machine[C any, E comparable] struct {
	// Graph data, immutable after Compile
	nodes    map[StateID]*Node[C, E]
	compiled bool

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	activePath    []StateID // Root -> ... -> Leaf
	timeInState   time.Duration
}

// Node is a state in the hierarchy
type Node[C any, E comparable] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter []ActionFunc[C]
	OnExit  []ActionFunc[C]

	// Evaluated in insertion order; first passing guard wins
	Transitions []Transition[C, E]
}

// Transition links a source state to a target on a trigger
type Transition[C any, E comparable] struct {
	TargetID StateID
	Trigger  E
	Guard    GuardFunc[C] // nil = always
}

// GuardFunc returns true if the transition should occur
type GuardFunc[C any] func(ctx C) bool

// ActionFunc executes a side effect on enter or exit
type ActionFunc[C any] func(ctx C)
