package system

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

func TestStepConsumesGrowth(t *testing.T) {
	f := newFixture(t, 400, 20)
	f.place(core.DirRight, core.Cell{X: 5, Y: 5})
	food := f.addItem(component.KindGrowth, core.Cell{X: 6, Y: 5})

	res := f.stepper.Step(f.gs)

	if res.Outcome != OutcomeContinue || !res.Grew || res.Consumed != food {
		t.Fatalf("result = %+v, want continue/grew/consumed", res)
	}
	if head, _ := f.gs.Snake.Head(); head != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, want {6 5}", head)
	}
	if f.gs.Snake.Len() != 2 {
		t.Errorf("length = %d, want 2", f.gs.Snake.Len())
	}
	if f.gs.Session.Score != 1 || f.gs.Session.ItemsConsumed != 1 {
		t.Errorf("score = %d consumed = %d, want 1, 1", f.gs.Session.Score, f.gs.Session.ItemsConsumed)
	}
	if _, ok := f.gs.Items.Get(food.ID); ok {
		t.Error("consumed item still on board")
	}
	if n := f.gs.Items.Count(component.KindGrowth); n != 2 {
		t.Errorf("growth after maintenance = %d, want 2", n)
	}
}

func TestStepWallCollision(t *testing.T) {
	f := newFixture(t, 400, 21)
	f.place(core.DirLeft, core.Cell{X: 0, Y: 0})

	res := f.stepper.Step(f.gs)
	if res.Outcome != OutcomeWall {
		t.Errorf("Outcome = %v, want wall", res.Outcome)
	}
	if head, _ := f.gs.Snake.Head(); head != (core.Cell{X: 0, Y: 0}) {
		t.Errorf("snake moved on wall collision: head %v", head)
	}
}

func TestStepSelfCollision(t *testing.T) {
	f := newFixture(t, 400, 22)
	// Head at (5,5) turning up into its own body
	f.place(core.DirUp,
		core.Cell{X: 5, Y: 5}, core.Cell{X: 6, Y: 5}, core.Cell{X: 6, Y: 4},
		core.Cell{X: 5, Y: 4}, core.Cell{X: 4, Y: 4})

	if res := f.stepper.Step(f.gs); res.Outcome != OutcomeSelf {
		t.Errorf("Outcome = %v, want self", res.Outcome)
	}
}

func TestStepLevelUp(t *testing.T) {
	f := newFixture(t, 400, 23)
	f.place(core.DirRight, core.Cell{X: 5, Y: 5})
	f.gs.Session.Score = 9
	f.addItem(component.KindGrowth, core.Cell{X: 6, Y: 5})

	res := f.stepper.Step(f.gs)

	if !res.LevelUp {
		t.Fatal("LevelUp = false at score 10")
	}
	if f.gs.Session.Level != 2 {
		t.Errorf("Level = %d, want 2", f.gs.Session.Level)
	}
	if f.gs.Session.TickInterval != 185*time.Millisecond {
		t.Errorf("TickInterval = %v, want 185ms", f.gs.Session.TickInterval)
	}

	fresh := 0
	for _, p := range f.gs.Effects.Particles {
		if p.Life == 1 && p.X == 200 && p.Y == 200 && p.Color == core.RGBSuccess {
			fresh++
		}
	}
	if fresh != parameter.BurstLevelUpCount {
		t.Errorf("level-up particles = %d, want %d", fresh, parameter.BurstLevelUpCount)
	}
}

func TestStepHazardEndsWithoutScoring(t *testing.T) {
	f := newFixture(t, 400, 24)
	f.place(core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})
	f.gs.Session.Score = 7
	f.addItem(component.KindHazard, core.Cell{X: 6, Y: 5})
	before := f.gs.Items.Len()

	res := f.stepper.Step(f.gs)

	if res.Outcome != OutcomeHazard {
		t.Fatalf("Outcome = %v, want hazard", res.Outcome)
	}
	if f.gs.Session.Score != 7 {
		t.Errorf("Score = %d, want 7", f.gs.Session.Score)
	}
	if n := len(f.gs.Effects.Particles); n != parameter.BurstHazardCount {
		t.Errorf("particles = %d, want %d", n, parameter.BurstHazardCount)
	}
	if f.gs.Effects.Shake != parameter.ShakeHazard {
		t.Errorf("Shake = %v, want %v", f.gs.Effects.Shake, parameter.ShakeHazard)
	}
	if f.gs.Items.Len() != before-1 {
		t.Errorf("items = %d, want %d (no maintenance after hazard)", f.gs.Items.Len(), before-1)
	}
}

func TestStepMovesWithoutGrowing(t *testing.T) {
	f := newFixture(t, 400, 25)
	f.place(core.DirDown, core.Cell{X: 3, Y: 3}, core.Cell{X: 3, Y: 2}, core.Cell{X: 3, Y: 1})

	res := f.stepper.Step(f.gs)
	if res.Outcome != OutcomeContinue || res.Grew {
		t.Fatalf("result = %+v", res)
	}
	want := []core.Cell{{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 2}}
	for i, c := range want {
		if f.gs.Snake.Body[i] != c {
			t.Errorf("body[%d] = %v, want %v", i, f.gs.Snake.Body[i], c)
		}
	}
	if f.gs.Snake.Len() != 3 {
		t.Errorf("length = %d, want 3", f.gs.Snake.Len())
	}
}

// Random walk checking the per-step invariants across many sessions
func TestStepInvariantsRandomWalk(t *testing.T) {
	f := newFixture(t, 400, 26)
	f.spawner.Seed(f.gs)
	walk := rand.New(rand.NewSource(99))
	turns := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
	sessions := 0

	for i := 0; i < 3000; i++ {
		if walk.Intn(4) == 0 {
			f.gs.Direction = f.gs.Direction.Turn(turns[walk.Intn(len(turns))])
		}
		before := f.gs.Snake.Len()
		level := f.gs.Session.Level
		interval := f.gs.Session.TickInterval

		res := f.stepper.Step(f.gs)
		assertItemsValid(t, f.gs)

		if res.Outcome.Terminal() {
			sessions++
			f.gs.Reset(uuid.New(), testEpoch)
			f.spawner.Seed(f.gs)
			continue
		}

		delta := 0
		if res.Grew {
			delta = 1
		}
		if got := f.gs.Snake.Len(); got != before+delta {
			t.Fatalf("step %d: length %d -> %d, grew=%v", i, before, got, res.Grew)
		}
		if f.gs.Session.Level != LevelFor(f.gs.Session.Score) {
			t.Fatalf("step %d: level %d at score %d", i, f.gs.Session.Level, f.gs.Session.Score)
		}
		if f.gs.Session.Level < level || f.gs.Session.TickInterval > interval {
			t.Fatalf("step %d: level or speed regressed", i)
		}
		for _, it := range f.gs.Items.All() {
			if f.gs.Snake.Contains(it.Cell) {
				t.Fatalf("step %d: item %d under snake at %v", i, it.ID, it.Cell)
			}
		}
	}
	if sessions == 0 {
		t.Log("random walk never collided")
	}
}

func TestDirectionReversalRejected(t *testing.T) {
	tests := []struct {
		cur, req, want core.Direction
	}{
		{core.DirRight, core.DirLeft, core.DirRight},
		{core.DirUp, core.DirDown, core.DirUp},
		{core.DirRight, core.DirUp, core.DirUp},
		{core.DirDown, core.DirLeft, core.DirLeft},
	}
	for _, tt := range tests {
		if got := tt.cur.Turn(tt.req); got != tt.want {
			t.Errorf("%v.Turn(%v) = %v, want %v", tt.cur, tt.req, got, tt.want)
		}
	}
}

func TestStepIdleDirection(t *testing.T) {
	f := newFixture(t, 400, 29)
	body := []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	f.place(core.Direction{}, body...)
	f.gs.Effects.Shake = parameter.ShakeHazard

	res := f.stepper.Step(f.gs)

	if res.Outcome != OutcomeContinue {
		t.Errorf("Outcome = %v, want %v", res.Outcome, OutcomeContinue)
	}
	if res.Grew || res.Consumed != nil {
		t.Errorf("result = %+v, want no growth or consumption", res)
	}
	for i, c := range body {
		if got := f.gs.Snake.Body[i]; got != c {
			t.Errorf("Body[%d] = %v, want %v", i, got, c)
		}
	}
	if f.gs.Effects.Shake >= parameter.ShakeHazard {
		t.Errorf("Shake = %v, want decayed below %v", f.gs.Effects.Shake, parameter.ShakeHazard)
	}
}
