package system

import (
	"log"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/engine"
)

// Outcome is the terminal status of a step
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeHazard
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeHazard:
		return "hazard"
	}
	return "unknown"
}

// Terminal reports whether the outcome ends the session
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// StepResult describes what one tick did
type StepResult struct {
	Outcome  Outcome
	Consumed *component.Item // nil when nothing was eaten
	LevelUp  bool
	Grew     bool
}

// Stepper advances the simulation one tick
type Stepper struct {
	Spawner *Spawner
	Effects *Effects
	Pace    Pace
}

// NewStepper wires the step to its spawner and effect system
func NewStepper(spawner *Spawner, effects *Effects, pace Pace) *Stepper {
	return &Stepper{Spawner: spawner, Effects: effects, Pace: pace}
}

// Step moves the snake, resolves collisions and consumption, maintains items,
// advances effects and checks the level
// Callers invoke it only while running and not paused
func (st *Stepper) Step(gs *engine.GameState) StepResult {
	head, ok := gs.Snake.Head()
	if !ok {
		return StepResult{Outcome: OutcomeSelf}
	}
	// Idle snake holds position; effects still settle
	if gs.Direction.IsZero() {
		st.Effects.Advance(gs)
		return StepResult{}
	}
	next := head.Add(gs.Direction)

	if !gs.Grid.Contains(next) {
		return StepResult{Outcome: OutcomeWall}
	}
	if gs.Snake.Contains(next) {
		return StepResult{Outcome: OutcomeSelf}
	}

	gs.Snake.Prepend(next)

	var res StepResult
	if it := gs.Items.At(next); it != nil {
		gs.Items.Remove(it.ID)
		res.Consumed = it

		if it.Kind.Info().Lethal {
			st.Effects.HazardHit(gs, it)
			res.Outcome = OutcomeHazard
			return res
		}

		gs.Session.Score += it.Kind.Info().Points
		gs.Session.ItemsConsumed++
		st.Effects.ItemConsumed(gs, it)
		res.Grew = true
	} else {
		gs.Snake.DropTail()
	}

	st.Spawner.Maintain(gs)
	st.Effects.Advance(gs)

	if level := LevelFor(gs.Session.Score); level > gs.Session.Level {
		gs.Session.Level = level
		gs.Session.TickInterval = st.Pace.Interval(level)
		st.Effects.LevelUp(gs)
		res.LevelUp = true
		log.Printf("[%s] level %d, interval %v", gs.Session.ID, level, gs.Session.TickInterval)
	}
	return res
}
