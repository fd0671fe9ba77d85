package system

import (
	"log"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// SpawnResult reports the outcome of one placement attempt
type SpawnResult struct {
	Attempts int
	Placed   bool
}

// Spawner places items on free cells away from the snake head
type Spawner struct {
	rng   *rand.Rand
	clock engine.TimeProvider

	// OnHazard is called for every placed hazard, after it joins the item set
	OnHazard func(it *component.Item)

	statPlaced *atomic.Int64
	statFailed *atomic.Int64
}

// NewSpawner creates a spawner drawing from rng; reg may be nil
func NewSpawner(rng *rand.Rand, clock engine.TimeProvider, reg *status.Registry) *Spawner {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Spawner{
		rng:        rng,
		clock:      clock,
		statPlaced: reg.Ints.Get(status.KeySpawnPlaced),
		statFailed: reg.Ints.Get(status.KeySpawnFailed),
	}
}

// Spawn places one item of kind on a uniformly sampled free cell
// Gives up silently after SpawnMaxAttempts samples
func (s *Spawner) Spawn(gs *engine.GameState, kind component.ItemKind) (*component.Item, SpawnResult) {
	cell, res := s.sampleCell(gs)
	if !res.Placed {
		s.statFailed.Add(1)
		log.Printf("[%s] spawn %s: no free cell after %d attempts", gs.Session.ID, kind, res.Attempts)
		return nil, res
	}

	it := &component.Item{
		ID:        gs.NextItemID(),
		Cell:      cell,
		Kind:      kind,
		CreatedAt: s.clock.Now(),
	}
	gs.Items.Add(it)
	s.statPlaced.Add(1)

	if kind == component.KindHazard && s.OnHazard != nil {
		s.OnHazard(it)
	}
	return it, res
}

// SpawnRandom spawns an item of a weighted random kind
func (s *Spawner) SpawnRandom(gs *engine.GameState) (*component.Item, SpawnResult) {
	return s.Spawn(gs, s.RandomKind())
}

// RandomKind draws Growth 60%, Bonus 30%, Hazard 10%
func (s *Spawner) RandomKind() component.ItemKind {
	r := s.rng.Float64()
	switch {
	case r < parameter.SpawnGrowthThreshold:
		return component.KindGrowth
	case r < parameter.SpawnBonusThreshold:
		return component.KindBonus
	default:
		return component.KindHazard
	}
}

// Maintain runs once per tick: Growth topped up to MinGrowthItems, Bonus to MinBonusItems,
// and a chance of a hazard when none is on the board
func (s *Spawner) Maintain(gs *engine.GameState) {
	for missing := parameter.MinGrowthItems - gs.Items.Count(component.KindGrowth); missing > 0; missing-- {
		s.Spawn(gs, component.KindGrowth)
	}
	for missing := parameter.MinBonusItems - gs.Items.Count(component.KindBonus); missing > 0; missing-- {
		s.Spawn(gs, component.KindBonus)
	}
	if s.rng.Float64() < parameter.HazardTickChance && gs.Items.Count(component.KindHazard) == 0 {
		s.Spawn(gs, component.KindHazard)
	}
}

// Seed populates a fresh board
func (s *Spawner) Seed(gs *engine.GameState) {
	for i := 0; i < parameter.MinGrowthItems; i++ {
		s.Spawn(gs, component.KindGrowth)
	}
	for i := 0; i < parameter.MinBonusItems; i++ {
		s.Spawn(gs, component.KindBonus)
	}
	if s.rng.Float64() < parameter.HazardSeedChance {
		s.Spawn(gs, component.KindHazard)
	}
}

// sampleCell draws up to SpawnMaxAttempts cells and returns the first acceptable one
func (s *Spawner) sampleCell(gs *engine.GameState) (core.Cell, SpawnResult) {
	n := gs.Grid.TileCount
	if n <= 0 {
		return core.Cell{}, SpawnResult{}
	}
	head, hasHead := gs.Snake.Head()

	for attempt := 1; attempt <= parameter.SpawnMaxAttempts; attempt++ {
		c := core.Cell{X: s.rng.Intn(n), Y: s.rng.Intn(n)}
		if gs.Occupied(c) {
			continue
		}
		if hasHead && c.Manhattan(head) < parameter.SpawnMinHeadDistance {
			continue
		}
		return c, SpawnResult{Attempts: attempt, Placed: true}
	}
	return core.Cell{}, SpawnResult{Attempts: parameter.SpawnMaxAttempts}
}
