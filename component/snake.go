package component

import "github.com/lixenwraith/vi-snake/core"

// Snake is the player body, head first
type Snake struct {
	Body []core.Cell
}

// NewSnake creates a single-cell snake at head
func NewSnake(head core.Cell) Snake {
	return Snake{Body: []core.Cell{head}}
}

// Head returns the first cell; ok is false for an empty body
func (s *Snake) Head() (core.Cell, bool) {
	if len(s.Body) == 0 {
		return core.Cell{}, false
	}
	return s.Body[0], true
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any body cell equals c
func (s *Snake) Contains(c core.Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Prepend inserts c as the new head
func (s *Snake) Prepend(c core.Cell) {
	s.Body = append(s.Body, core.Cell{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = c
}

// DropTail removes the last cell
func (s *Snake) DropTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}
