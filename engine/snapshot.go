package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// Phase is the session lifecycle stage shown to the player
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Summary is the end-of-session report
type Summary struct {
	SessionID       uuid.UUID
	Reason          string
	Score           int
	Level           int
	ItemsConsumed   int
	Survival        time.Duration
	SurvivalSeconds int
	Efficiency      float64 // points per item, 0 when nothing eaten
	Rating          string
	RatingColor     core.RGB
}

// ItemView is the render-facing copy of an item
type ItemView struct {
	Cell  core.Cell
	Kind  component.ItemKind
	Pulse float64
}

// HUD holds the status line values
type HUD struct {
	Score      int
	Level      int
	Interval   time.Duration
	SpeedLabel string
	Elapsed    time.Duration
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
// Slices are reused across fills; consumers must not retain them
type Snapshot struct {
	Phase     Phase
	Grid      core.Grid
	Snake     []core.Cell
	Direction core.Direction
	Items     []ItemView
	Particles []component.Particle
	Shake     float64
	HUD       HUD
	Summary   *Summary // set in PhaseEnded
}

// Fill copies the simulation part of gs into the snapshot, reusing its buffers
func (s *Snapshot) Fill(gs *GameState) {
	s.Grid = gs.Grid
	s.Snake = append(s.Snake[:0], gs.Snake.Body...)
	s.Direction = gs.Direction

	s.Items = s.Items[:0]
	for _, it := range gs.Items.All() {
		s.Items = append(s.Items, ItemView{Cell: it.Cell, Kind: it.Kind, Pulse: it.Pulse})
	}

	s.Particles = append(s.Particles[:0], gs.Effects.Particles...)
	s.Shake = gs.Effects.Shake

	s.HUD.Score = gs.Session.Score
	s.HUD.Level = gs.Session.Level
	s.HUD.Interval = gs.Session.TickInterval
}
