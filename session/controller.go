package session

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/fsm"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/system"
)

// End reasons reported in the summary
const (
	ReasonWall   = "wall"
	ReasonSelf   = "self"
	ReasonHazard = "hazard"
	ReasonQuit   = "quit"
)

// Lifecycle states
const (
	stateMenu fsm.StateID = iota + 2
	stateActive
	stateRunning
	statePaused
	stateEnded
)

type trigger uint8

const (
	trigStart trigger = iota
	trigPause
	trigResume
	trigEnd
	trigMenu
)

// Options configures a controller; changes take effect at the next Start
type Options struct {
	Grid           core.Grid
	Pace           system.Pace
	HazardLifetime time.Duration
	Seed           uint64
}

// DefaultOptions returns the stock 20x20 board settings
func DefaultOptions() Options {
	return Options{
		Grid:           core.NewGrid(parameter.CanvasSize, parameter.CellSize),
		Pace:           system.DefaultPace(),
		HazardLifetime: parameter.HazardLifetime,
		Seed:           uint64(time.Now().UnixNano()),
	}
}

// Controller owns one game: its state, lifecycle, tick schedule and hazard expiries
// All methods must be called from the scheduler's control loop
type Controller struct {
	opts    Options
	pending *Options

	gs      *engine.GameState
	sched   *engine.Scheduler
	machine *fsm.Machine[*Controller, trigger]

	spawner *system.Spawner
	effects *system.Effects
	stepper *system.Stepper

	events  *event.EventQueue
	summary engine.Summary

	statTicks   *atomic.Int64
	statExpired *atomic.Int64
	statNoop    *atomic.Int64
	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statPhase   *status.AtomicString
	statSession *status.AtomicString
}

// New creates a controller in the menu state
// sched and events are shared with the shell; reg may be nil
func New(opts Options, sched *engine.Scheduler, clock engine.TimeProvider, events *event.EventQueue, reg *status.Registry) (*Controller, error) {
	if opts.Grid.TileCount <= 0 {
		return nil, fmt.Errorf("session: empty board (tile count %d)", opts.Grid.TileCount)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	c := &Controller{
		opts:        opts,
		gs:          engine.NewGameState(opts.Grid),
		sched:       sched,
		events:      events,
		spawner:     system.NewSpawner(rng, clock, reg),
		effects:     system.NewEffects(rng, reg),
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statExpired: reg.Ints.Get(status.KeyHazardExpired),
		statNoop:    reg.Ints.Get(status.KeyHazardNoop),
		statPlayed:  reg.Ints.Get(status.KeySessionsPlayed),
		statDropped: reg.Ints.Get(status.KeyEventsDropped),
		statPhase:   reg.Strings.Get(status.KeySessionPhase),
		statSession: reg.Strings.Get(status.KeySessionID),
	}
	c.gs.BaseInterval = opts.Pace.Base
	c.stepper = system.NewStepper(c.spawner, c.effects, opts.Pace)
	c.spawner.OnHazard = c.scheduleExpiry

	m, err := newMachine()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	c.machine = m
	if err := m.Init(c, stateMenu); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	c.statPhase.Store(c.Phase().String())
	return c, nil
}

// newMachine builds Menu -> Active{Running <-> Paused} -> Ended -> Menu
func newMachine() (*fsm.Machine[*Controller, trigger], error) {
	m := fsm.NewMachine[*Controller, trigger]()
	m.AddState(fsm.StateRoot, "root", fsm.StateNone)
	m.AddState(stateMenu, "menu", fsm.StateRoot)
	m.AddState(stateActive, "active", fsm.StateRoot)
	m.AddState(stateRunning, "running", stateActive)
	m.AddState(statePaused, "paused", stateActive)
	m.AddState(stateEnded, "ended", fsm.StateRoot)

	m.AddTransition(stateMenu, trigStart, stateRunning, nil)
	m.AddTransition(stateEnded, trigStart, stateRunning, nil)
	m.AddTransition(stateRunning, trigPause, statePaused, nil)
	m.AddTransition(statePaused, trigResume, stateRunning, nil)
	m.AddTransition(stateActive, trigEnd, stateEnded, nil)
	m.AddTransition(stateEnded, trigMenu, stateMenu, nil)

	m.OnEnter(stateActive, func(c *Controller) { c.gs.Session.Running = true })
	m.OnExit(stateActive, (*Controller).stopTimers)
	m.OnEnter(stateRunning, func(c *Controller) { c.gs.Session.Paused = false })
	m.OnEnter(statePaused, func(c *Controller) { c.gs.Session.Paused = true })

	return m, m.Compile()
}

// stopTimers halts the tick and drops pending expiries
func (c *Controller) stopTimers() {
	c.sched.StopTicker()
	c.sched.CancelAll()
	c.gs.Session.Running = false
	c.gs.Session.Paused = false
}

// State returns the game state; read-only outside the control loop
func (c *Controller) State() *engine.GameState {
	return c.gs
}

// Phase returns the current lifecycle phase
func (c *Controller) Phase() engine.Phase {
	switch c.machine.Current() {
	case stateRunning:
		return engine.PhaseRunning
	case statePaused:
		return engine.PhasePaused
	case stateEnded:
		return engine.PhaseEnded
	}
	return engine.PhaseMenu
}

// Summary returns the report of the last ended session
func (c *Controller) Summary() (engine.Summary, bool) {
	return c.summary, c.summary.SessionID != uuid.Nil
}

// SetOptions stages new options, applied by the next Start
func (c *Controller) SetOptions(opts Options) {
	c.pending = &opts
}

// Start begins a fresh session from the menu or end screen
func (c *Controller) Start(now time.Time) bool {
	if !c.machine.Can(c, trigStart) {
		return false
	}
	c.applyPending()

	c.sched.CancelAll()
	c.gs.Reset(uuid.New(), now)
	c.summary = engine.Summary{}

	c.machine.Fire(c, trigStart)
	c.statPlayed.Add(1)
	c.statSession.Store(c.gs.Session.ID.String())
	c.statPhase.Store(c.Phase().String())
	c.emit(now, event.EventSessionStarted, &event.SessionStartedPayload{ID: c.gs.Session.ID})

	c.spawner.Seed(c.gs)
	c.sched.StartTicker(now, c.gs.Session.TickInterval, c.Tick)
	log.Printf("[%s] session started, %dx%d board", c.gs.Session.ID, c.gs.Grid.TileCount, c.gs.Grid.TileCount)
	return true
}

func (c *Controller) applyPending() {
	if c.pending == nil {
		return
	}
	opts := *c.pending
	c.pending = nil
	if opts.Grid.TileCount <= 0 {
		log.Printf("session: ignoring options with empty board")
		return
	}

	c.opts.Grid = opts.Grid
	c.opts.Pace = opts.Pace
	c.opts.HazardLifetime = opts.HazardLifetime
	c.gs.Grid = opts.Grid
	c.gs.BaseInterval = opts.Pace.Base
	c.stepper.Pace = opts.Pace
}

// Tick runs one simulation step; no-op unless running and not paused
func (c *Controller) Tick(now time.Time) {
	if c.machine.Current() != stateRunning {
		return
	}
	c.statTicks.Add(1)

	res := c.stepper.Step(c.gs)

	if it := res.Consumed; it != nil {
		c.sched.Cancel(it.ID)
		c.emit(now, event.EventItemConsumed, itemPayload(it))
		if pts := it.Kind.Info().Points; pts > 0 {
			c.emit(now, event.EventScoreChanged, &event.ScorePayload{Score: c.gs.Session.Score, Delta: pts})
		}
	}

	switch res.Outcome {
	case system.OutcomeWall:
		c.End(now, ReasonWall)
		return
	case system.OutcomeSelf:
		c.End(now, ReasonSelf)
		return
	case system.OutcomeHazard:
		c.End(now, ReasonHazard)
		return
	}

	if res.LevelUp {
		interval := c.gs.Session.TickInterval
		c.sched.SetTickInterval(now, interval)
		c.emit(now, event.EventLevelChanged, &event.LevelPayload{
			Level:      c.gs.Session.Level,
			Interval:   interval,
			SpeedLabel: system.SpeedLabel(interval),
		})
	}
}

// Pause freezes a running session
func (c *Controller) Pause(now time.Time) bool {
	if !c.machine.Fire(c, trigPause) {
		return false
	}
	c.statPhase.Store(c.Phase().String())
	c.emit(now, event.EventPaused, nil)
	return true
}

// Resume continues a paused session
func (c *Controller) Resume(now time.Time) bool {
	if !c.machine.Fire(c, trigResume) {
		return false
	}
	c.statPhase.Store(c.Phase().String())
	c.emit(now, event.EventResumed, nil)
	return true
}

// TogglePause flips between running and paused
func (c *Controller) TogglePause(now time.Time) bool {
	if c.machine.Current() == statePaused {
		return c.Resume(now)
	}
	return c.Pause(now)
}

// FocusLost pauses a running session
func (c *Controller) FocusLost(now time.Time) bool {
	if c.machine.Current() != stateRunning {
		return false
	}
	return c.Pause(now)
}

// End finishes the active session and publishes its summary
func (c *Controller) End(now time.Time, reason string) bool {
	if !c.machine.In(stateActive) {
		return false
	}

	s := &c.gs.Session
	survival := now.Sub(s.StartTime)
	if survival < 0 {
		survival = 0
	}
	rating := RatingFor(s.Score)
	c.summary = engine.Summary{
		SessionID:       s.ID,
		Reason:          reason,
		Score:           s.Score,
		Level:           s.Level,
		ItemsConsumed:   s.ItemsConsumed,
		Survival:        survival,
		SurvivalSeconds: int(survival / time.Second),
		Rating:          rating.Label,
		RatingColor:     rating.Color,
	}
	if s.ItemsConsumed > 0 {
		c.summary.Efficiency = float64(s.Score) / float64(s.ItemsConsumed)
	}

	c.machine.Fire(c, trigEnd)

	c.statPhase.Store(c.Phase().String())
	summary := c.summary
	c.emit(now, event.EventSessionEnded, &summary)
	log.Printf("[%s] session ended (%s): score %d, level %d, %ds, %s",
		s.ID, reason, summary.Score, summary.Level, summary.SurvivalSeconds, summary.Rating)
	return true
}

// ReturnToMenu leaves a paused session (ending it first) or the end screen
func (c *Controller) ReturnToMenu(now time.Time) bool {
	switch c.machine.Current() {
	case statePaused:
		c.End(now, ReasonQuit)
	case stateEnded:
	default:
		return false
	}
	c.machine.Fire(c, trigMenu)
	c.statPhase.Store(c.Phase().String())
	c.emit(now, event.EventReturnedToMenu, nil)
	return true
}

// Apply routes a player intent; intents outside their phase are ignored
// Returns true when the intent changed something
func (c *Controller) Apply(in input.Intent, now time.Time) bool {
	if dir, ok := in.Direction(); ok {
		if c.machine.Current() != stateRunning {
			return false
		}
		next := c.gs.Direction.Turn(dir)
		changed := next != c.gs.Direction
		c.gs.Direction = next
		return changed
	}

	switch in {
	case input.IntentPause:
		return c.TogglePause(now)
	case input.IntentEscape:
		return c.ReturnToMenu(now)
	case input.IntentStart:
		return c.Start(now)
	case input.IntentFocusLost:
		return c.FocusLost(now)
	}
	return false
}

// Snapshot copies the frame state into dst
func (c *Controller) Snapshot(dst *engine.Snapshot, now time.Time) {
	dst.Fill(c.gs)
	dst.Phase = c.Phase()
	dst.HUD.SpeedLabel = system.SpeedLabel(c.gs.Session.TickInterval)
	dst.Summary = nil

	switch dst.Phase {
	case engine.PhaseRunning, engine.PhasePaused:
		dst.HUD.Elapsed = now.Sub(c.gs.Session.StartTime)
	case engine.PhaseEnded:
		dst.HUD.Elapsed = c.summary.Survival
		summary := c.summary
		dst.Summary = &summary
	default:
		dst.HUD.Elapsed = 0
	}
}

// scheduleExpiry arms the one-shot removal of a freshly placed hazard
func (c *Controller) scheduleExpiry(it *component.Item) {
	id := it.ID
	c.sched.After(it.CreatedAt, c.opts.HazardLifetime, id, func(now time.Time) {
		c.expire(id, now)
	})
	c.emit(it.CreatedAt, event.EventHazardSpawned, itemPayload(it))
}

// expire removes the hazard with id if it is still on the board
func (c *Controller) expire(id uint64, now time.Time) {
	it, ok := c.gs.Items.Get(id)
	if !ok {
		c.statNoop.Add(1)
		log.Printf("[%s] expiry for item %d: already gone", c.gs.Session.ID, id)
		return
	}
	c.gs.Items.Remove(id)
	c.statExpired.Add(1)
	c.emit(now, event.EventHazardExpired, itemPayload(it))
}

func (c *Controller) emit(now time.Time, t event.EventType, payload any) {
	if c.events == nil {
		return
	}
	c.events.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      c.sched.TickCount(),
		Timestamp: now,
	})
	c.statDropped.Store(int64(c.events.Dropped()))
}

func itemPayload(it *component.Item) *event.ItemPayload {
	return &event.ItemPayload{ID: it.ID, Kind: it.Kind, Cell: it.Cell}
}
