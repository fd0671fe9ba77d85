package fsm

import "fmt"

// AddState adds a node; parentID is StateNone for the root
func (m *Machine[C, E]) AddState(id StateID, name string, parentID StateID) *Node[C, E] {
	node := &Node[C, E]{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
	m.nodes[id] = node
	m.compiled = false
	return node
}

// AddTransition adds a transition leaving sourceID
func (m *Machine[C, E]) AddTransition(sourceID StateID, trigger E, targetID StateID, guard GuardFunc[C]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, Transition[C, E]{
			TargetID: targetID,
			Trigger:  trigger,
			Guard:    guard,
		})
	}
}

// OnEnter appends an entry action to the state
func (m *Machine[C, E]) OnEnter(id StateID, fn ActionFunc[C]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an exit action to the state
func (m *Machine[C, E]) OnExit(id StateID, fn ActionFunc[C]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// Compile calculates the root path of every node and validates transition targets
// Must be called after the graph is built and before Init
func (m *Machine[C, E]) Compile() error {
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)
		curr := node
		for depth := 0; ; depth++ {
			if depth > len(m.nodes) {
				return fmt.Errorf("node %d: parent cycle", id)
			}
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			curr = parent
		}

		// Reverse to [Root, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		node.Path = path

		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("node %d transitions to unknown state %d", id, t.TargetID)
			}
		}
	}
	m.compiled = true
	return nil
}
