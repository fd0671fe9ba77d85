package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates an empty FSM
func NewMachine[C any, E comparable]() *Machine[C, E] {
	return &Machine[C, E]{
		nodes: make(map[StateID]*Node[C, E]),
	}
}

// Init enters the initial state, running entry actions from the root down
func (m *Machine[C, E]) Init(ctx C, initial StateID) error {
	if !m.compiled {
		if err := m.Compile(); err != nil {
			return err
		}
	}
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state %d not found", initial)
	}

	m.InitialStateID = initial
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	for _, id := range node.Path {
		for _, fn := range m.nodes[id].OnEnter {
			fn(ctx)
		}
	}
	m.setActive(node)
	return nil
}

// Update accumulates time spent in the active state
func (m *Machine[C, E]) Update(dt time.Duration) {
	m.timeInState += dt
}

// Fire routes a trigger from the active leaf up through its ancestors
// Returns true if a transition was taken
func (m *Machine[C, E]) Fire(ctx C, trigger E) bool {
	if m.activeStateID == StateNone {
		return false
	}

	// Bubble up: Leaf -> Parent -> Root
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, t := range node.Transitions {
			if t.Trigger != trigger {
				continue
			}
			if t.Guard == nil || t.Guard(ctx) {
				m.transition(ctx, t.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// Can reports whether trigger would cause a transition from the active state
func (m *Machine[C, E]) Can(ctx C, trigger E) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, t := range node.Transitions {
			if t.Trigger == trigger && (t.Guard == nil || t.Guard(ctx)) {
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor, then enters down to target
func (m *Machine[C, E]) transition(ctx C, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target := m.nodes[targetID]

	lca := -1
	n := min(len(m.activePath), len(target.Path))
	for i := 0; i < n && m.activePath[i] == target.Path[i]; i++ {
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		for _, fn := range m.nodes[m.activePath[i]].OnExit {
			fn(ctx)
		}
	}
	for i := lca + 1; i < len(target.Path); i++ {
		for _, fn := range m.nodes[target.Path[i]].OnEnter {
			fn(ctx)
		}
	}

	m.setActive(target)
}

func (m *Machine[C, E]) setActive(node *Node[C, E]) {
	m.activeStateID = node.ID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)
}

// Current returns the active leaf state
func (m *Machine[C, E]) Current() StateID {
	return m.activeStateID
}

// In reports whether id is the active leaf or one of its ancestors
func (m *Machine[C, E]) In(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// StateName returns the name of the active leaf
func (m *Machine[C, E]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns the time accumulated by Update since the last transition
func (m *Machine[C, E]) TimeInState() time.Duration {
	return m.timeInState
}
