package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Session holds the per-playthrough counters
type Session struct {
	ID            uuid.UUID
	Score         int
	Level         int
	Running       bool
	Paused        bool
	StartTime     time.Time
	TickInterval  time.Duration
	ItemsConsumed int
}

// GameState is the complete mutable simulation state of one game
// Owned by a single controller; never shared across goroutines
type GameState struct {
	Grid      core.Grid
	Session   Session
	Snake     component.Snake
	Direction core.Direction
	Items     component.ItemSet
	Effects   component.EffectField

	// BaseInterval is the level 1 tick interval applied on Reset
	BaseInterval time.Duration

	nextItemID uint64
}

// NewGameState creates an idle state for the given board
func NewGameState(grid core.Grid) *GameState {
	return &GameState{
		Grid:         grid,
		BaseInterval: parameter.BaseTickInterval,
		Session:      Session{Level: 1, TickInterval: parameter.BaseTickInterval},
	}
}

// Reset prepares a fresh running session: centered one-cell snake moving right, no items or effects
func (gs *GameState) Reset(id uuid.UUID, now time.Time) {
	gs.Session = Session{
		ID:           id,
		Level:        1,
		Running:      true,
		StartTime:    now,
		TickInterval: gs.BaseInterval,
	}
	gs.Snake = component.NewSnake(gs.Grid.CenterCell())
	gs.Direction = core.DirRight
	gs.Items.Clear()
	gs.Effects.Particles = gs.Effects.Particles[:0]
	gs.Effects.Shake = 0
}

// NextItemID returns a fresh item identity, unique for the lifetime of the state
func (gs *GameState) NextItemID() uint64 {
	gs.nextItemID++
	return gs.nextItemID
}

// Occupied reports whether c holds a snake cell or an item
func (gs *GameState) Occupied(c core.Cell) bool {
	return gs.Snake.Contains(c) || gs.Items.At(c) != nil
}
