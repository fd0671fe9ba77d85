package system

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	gs      *engine.GameState
	clock   *engine.MockTimeProvider
	reg     *status.Registry
	spawner *Spawner
	effects *Effects
	stepper *Stepper
}

func newFixture(t *testing.T, canvas int, seed uint64) *fixture {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	clock := engine.NewMockTimeProvider(testEpoch)
	reg := status.NewRegistry()

	gs := engine.NewGameState(core.NewGrid(canvas, 20))
	gs.Reset(uuid.New(), testEpoch)

	sp := NewSpawner(rng, clock, reg)
	fx := NewEffects(rng, reg)
	return &fixture{
		gs:      gs,
		clock:   clock,
		reg:     reg,
		spawner: sp,
		effects: fx,
		stepper: NewStepper(sp, fx, DefaultPace()),
	}
}

// place puts the snake at body (head first) moving dir
func (f *fixture) place(dir core.Direction, body ...core.Cell) {
	f.gs.Snake = component.Snake{Body: body}
	f.gs.Direction = dir
}

func (f *fixture) addItem(kind component.ItemKind, c core.Cell) *component.Item {
	it := &component.Item{ID: f.gs.NextItemID(), Cell: c, Kind: kind, CreatedAt: testEpoch}
	if !f.gs.Items.Add(it) {
		panic("addItem: cell taken")
	}
	return it
}

// assertItemsValid checks cell uniqueness and that no item sits on the snake
func assertItemsValid(t *testing.T, gs *engine.GameState) {
	t.Helper()
	seen := make(map[core.Cell]bool)
	for _, it := range gs.Items.All() {
		if seen[it.Cell] {
			t.Fatalf("two items share cell %v", it.Cell)
		}
		seen[it.Cell] = true
		if !gs.Grid.Contains(it.Cell) {
			t.Fatalf("item %d off board at %v", it.ID, it.Cell)
		}
	}
}
