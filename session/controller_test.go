package session

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	t     *testing.T
	c     *Controller
	clock *engine.MockTimeProvider
	sched *engine.Scheduler
	queue *event.EventQueue
	reg   *status.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 42
	return newHarnessWith(t, opts)
}

func newHarnessWith(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: engine.NewMockTimeProvider(epoch),
		sched: engine.NewScheduler(),
		queue: event.NewEventQueue(),
		reg:   status.NewRegistry(),
	}
	c, err := New(opts, h.sched, h.clock, h.queue, h.reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.c = c
	return h
}

func (h *harness) now() time.Time { return h.clock.Now() }

// advance moves the clock and runs everything that became due
func (h *harness) advance(d time.Duration) {
	h.sched.Poll(h.clock.Advance(d))
}

func (h *harness) start() {
	h.t.Helper()
	if !h.c.Start(h.now()) {
		h.t.Fatal("Start refused")
	}
}

// drain returns the queued event types in order
func (h *harness) drain() []event.GameEvent {
	return h.queue.Consume()
}

func findEvent(events []event.GameEvent, t event.EventType) (event.GameEvent, bool) {
	for _, ev := range events {
		if ev.Type == t {
			return ev, true
		}
	}
	return event.GameEvent{}, false
}

// clearAhead puts the snake alone at head moving dir with no items on the board
func (h *harness) clearAhead(head core.Cell, dir core.Direction) {
	h.c.gs.Items.Clear()
	h.sched.CancelAll()
	h.c.gs.Snake = component.Snake{Body: []core.Cell{head}}
	h.c.gs.Direction = dir
}

func TestNewStartsInMenu(t *testing.T) {
	h := newHarness(t)
	if h.c.Phase() != engine.PhaseMenu {
		t.Errorf("Phase = %v, want menu", h.c.Phase())
	}
	if h.sched.TickerActive() {
		t.Error("ticker active before Start")
	}
	if h.c.Pause(h.now()) || h.c.End(h.now(), ReasonWall) || h.c.ReturnToMenu(h.now()) {
		t.Error("lifecycle call accepted from menu")
	}
}

func TestStartSeedsAndSchedules(t *testing.T) {
	h := newHarness(t)
	h.start()

	gs := h.c.State()
	if h.c.Phase() != engine.PhaseRunning || !gs.Session.Running || gs.Session.Paused {
		t.Errorf("phase %v running %v paused %v", h.c.Phase(), gs.Session.Running, gs.Session.Paused)
	}
	if head, _ := gs.Snake.Head(); head != (core.Cell{X: 10, Y: 10}) || gs.Direction != core.DirRight {
		t.Errorf("snake head %v dir %v, want {10 10} right", head, gs.Direction)
	}
	if gs.Items.Count(component.KindGrowth) != 2 || gs.Items.Count(component.KindBonus) != 1 {
		t.Errorf("seeded growth %d bonus %d, want 2 and 1",
			gs.Items.Count(component.KindGrowth), gs.Items.Count(component.KindBonus))
	}
	if !h.sched.TickerActive() || h.sched.TickInterval() != parameter.BaseTickInterval {
		t.Errorf("ticker active %v interval %v", h.sched.TickerActive(), h.sched.TickInterval())
	}
	if h.sched.Pending() != gs.Items.Count(component.KindHazard) {
		t.Errorf("pending expiries %d, hazards %d", h.sched.Pending(), gs.Items.Count(component.KindHazard))
	}

	ev, ok := findEvent(h.drain(), event.EventSessionStarted)
	if !ok {
		t.Fatal("no session started event")
	}
	if ev.Payload.(*event.SessionStartedPayload).ID != gs.Session.ID {
		t.Error("started payload carries wrong session id")
	}

	if h.c.Start(h.now()) {
		t.Error("Start accepted while running")
	}
}

func TestTickMovesSnake(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 3, Y: 3}, core.DirDown)

	h.advance(parameter.BaseTickInterval)
	if head, _ := h.c.gs.Snake.Head(); head != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("head = %v, want {3 4}", head)
	}
	if got := h.reg.Ints.Get(status.KeyTicks).Load(); got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
}

func TestWallCollisionEndsSession(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 0, Y: 0}, core.DirLeft)
	h.drain()

	h.advance(parameter.BaseTickInterval)

	if h.c.Phase() != engine.PhaseEnded {
		t.Fatalf("Phase = %v, want ended", h.c.Phase())
	}
	sum, ok := h.c.Summary()
	if !ok || sum.Reason != ReasonWall {
		t.Errorf("summary = %+v, want wall", sum)
	}
	if h.sched.TickerActive() {
		t.Error("ticker still active after end")
	}
	if h.c.gs.Session.Running {
		t.Error("session still flagged running")
	}
	if _, ok := findEvent(h.drain(), event.EventSessionEnded); !ok {
		t.Error("no session ended event")
	}

	// No further ticks are processed
	ticks := h.reg.Ints.Get(status.KeyTicks).Load()
	h.advance(time.Second)
	if h.reg.Ints.Get(status.KeyTicks).Load() != ticks {
		t.Error("tick processed after end")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 2, Y: 2}, core.DirRight)

	if !h.c.TogglePause(h.now()) || h.c.Phase() != engine.PhasePaused {
		t.Fatal("TogglePause did not pause")
	}
	h.advance(2 * time.Second)
	if head, _ := h.c.gs.Snake.Head(); head != (core.Cell{X: 2, Y: 2}) {
		t.Errorf("snake moved while paused: %v", head)
	}
	if !h.sched.TickerActive() {
		t.Error("ticker stopped by pause")
	}
	if h.c.Apply(input.IntentDown, h.now()) {
		t.Error("direction accepted while paused")
	}

	if !h.c.TogglePause(h.now()) || h.c.Phase() != engine.PhaseRunning {
		t.Fatal("TogglePause did not resume")
	}
	h.advance(parameter.BaseTickInterval)
	if head, _ := h.c.gs.Snake.Head(); head == (core.Cell{X: 2, Y: 2}) {
		t.Error("snake did not move after resume")
	}

	events := h.drain()
	if _, ok := findEvent(events, event.EventPaused); !ok {
		t.Error("no paused event")
	}
	if _, ok := findEvent(events, event.EventResumed); !ok {
		t.Error("no resumed event")
	}
}

func TestFocusLostPausesOnlyWhenRunning(t *testing.T) {
	h := newHarness(t)
	if h.c.FocusLost(h.now()) {
		t.Error("FocusLost acted in menu")
	}
	h.start()
	if !h.c.Apply(input.IntentFocusLost, h.now()) || h.c.Phase() != engine.PhasePaused {
		t.Error("focus loss did not pause")
	}
	if h.c.FocusLost(h.now()) {
		t.Error("FocusLost acted while already paused")
	}
}

func TestEscapeOnlyFromPauseOrEnd(t *testing.T) {
	h := newHarness(t)
	h.start()

	if h.c.Apply(input.IntentEscape, h.now()) {
		t.Fatal("escape accepted while running")
	}

	h.c.Pause(h.now())
	h.advance(5 * time.Second)
	h.drain()
	if !h.c.Apply(input.IntentEscape, h.now()) {
		t.Fatal("escape refused while paused")
	}
	if h.c.Phase() != engine.PhaseMenu {
		t.Errorf("Phase = %v, want menu", h.c.Phase())
	}

	events := h.drain()
	ended, ok := findEvent(events, event.EventSessionEnded)
	if !ok {
		t.Fatal("escape did not end the session first")
	}
	sum := ended.Payload.(*engine.Summary)
	if sum.Reason != ReasonQuit || sum.SurvivalSeconds != 5 {
		t.Errorf("summary reason %q survival %ds, want quit and 5s", sum.Reason, sum.SurvivalSeconds)
	}
	if _, ok := findEvent(events, event.EventReturnedToMenu); !ok {
		t.Error("no returned to menu event")
	}
	if h.sched.Pending() != 0 || h.sched.TickerActive() {
		t.Error("timers survive return to menu")
	}
}

func TestDirectionIntents(t *testing.T) {
	h := newHarness(t)
	if h.c.Apply(input.IntentUp, h.now()) {
		t.Error("direction accepted in menu")
	}
	h.start()

	if h.c.Apply(input.IntentLeft, h.now()) {
		t.Error("reversal accepted")
	}
	if !h.c.Apply(input.IntentUp, h.now()) || h.c.gs.Direction != core.DirUp {
		t.Errorf("turn up refused, dir %v", h.c.gs.Direction)
	}
}

func TestLevelUpReschedulesTick(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 5, Y: 5}, core.DirRight)
	h.c.gs.Session.Score = 9
	h.c.gs.Items.Add(&component.Item{ID: h.c.gs.NextItemID(), Cell: core.Cell{X: 6, Y: 5}, Kind: component.KindGrowth})
	h.drain()

	h.advance(parameter.BaseTickInterval)

	if h.c.gs.Session.Level != 2 {
		t.Fatalf("Level = %d, want 2", h.c.gs.Session.Level)
	}
	if h.sched.TickInterval() != 185*time.Millisecond {
		t.Errorf("tick interval = %v, want 185ms", h.sched.TickInterval())
	}

	events := h.drain()
	ev, ok := findEvent(events, event.EventLevelChanged)
	if !ok {
		t.Fatal("no level changed event")
	}
	if p := ev.Payload.(*event.LevelPayload); p.Level != 2 || p.SpeedLabel != "Slow" {
		t.Errorf("level payload = %+v", p)
	}
	if ev, ok := findEvent(events, event.EventScoreChanged); !ok || ev.Payload.(*event.ScorePayload).Score != 10 {
		t.Error("score changed event missing or wrong")
	}

	// Next tick follows the new interval
	ticks := h.reg.Ints.Get(status.KeyTicks).Load()
	h.advance(185 * time.Millisecond)
	if h.reg.Ints.Get(status.KeyTicks).Load() != ticks+1 {
		t.Error("no tick at the new interval")
	}
}

func TestHazardExpiryIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 10, Y: 10}, core.DirRight)
	h.c.Pause(h.now())

	it, res := h.c.spawner.Spawn(h.c.gs, component.KindHazard)
	if !res.Placed {
		t.Fatal("hazard not placed")
	}
	if h.sched.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", h.sched.Pending())
	}
	h.drain()

	h.advance(parameter.HazardLifetime - time.Millisecond)
	if _, ok := h.c.gs.Items.Get(it.ID); !ok {
		t.Fatal("hazard expired early")
	}
	h.advance(time.Millisecond)
	if _, ok := h.c.gs.Items.Get(it.ID); ok {
		t.Fatal("hazard survived its lifetime")
	}
	if got := h.reg.Ints.Get(status.KeyHazardExpired).Load(); got != 1 {
		t.Errorf("hazard.expired = %d, want 1", got)
	}
	if _, ok := findEvent(h.drain(), event.EventHazardExpired); !ok {
		t.Error("no hazard expired event")
	}

	// A second expiry for the same identity changes nothing
	items := h.c.gs.Items.Len()
	h.c.expire(it.ID, h.now())
	if h.c.gs.Items.Len() != items {
		t.Error("repeat expiry removed an item")
	}
	if got := h.reg.Ints.Get(status.KeyHazardNoop).Load(); got != 1 {
		t.Errorf("hazard.expiry_noop = %d, want 1", got)
	}
	if h.sched.Cancel(it.ID) {
		t.Error("cancel of fired expiry reported pending work")
	}
}

func TestHazardLifetimeFromOptions(t *testing.T) {
	tests := []struct {
		name     string
		lifetime time.Duration
	}{
		{"short", 2 * time.Second},
		{"default", parameter.HazardLifetime},
		{"long", 40 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = 42
			opts.HazardLifetime = tt.lifetime
			h := newHarnessWith(t, opts)
			h.start()
			h.clearAhead(core.Cell{X: 10, Y: 10}, core.DirRight)
			h.c.Pause(h.now())

			it, res := h.c.spawner.Spawn(h.c.gs, component.KindHazard)
			if !res.Placed {
				t.Fatal("hazard not placed")
			}

			h.advance(tt.lifetime - time.Millisecond)
			if _, ok := h.c.gs.Items.Get(it.ID); !ok {
				t.Errorf("hazard present at %v = false, want true", tt.lifetime-time.Millisecond)
			}
			h.advance(time.Millisecond)
			if _, ok := h.c.gs.Items.Get(it.ID); ok {
				t.Errorf("hazard present at %v = true, want false", tt.lifetime)
			}
		})
	}
}

func TestExpiryRemovesOnlyItsOwnItem(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 10, Y: 10}, core.DirRight)
	h.c.Pause(h.now())

	first, _ := h.c.spawner.Spawn(h.c.gs, component.KindHazard)
	h.advance(5 * time.Second)
	second, _ := h.c.spawner.Spawn(h.c.gs, component.KindHazard)

	h.advance(10 * time.Second)
	if _, ok := h.c.gs.Items.Get(first.ID); ok {
		t.Error("first hazard not expired")
	}
	if _, ok := h.c.gs.Items.Get(second.ID); !ok {
		t.Error("second hazard removed by first expiry")
	}
}

func TestHazardConsumptionEndsSession(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.clearAhead(core.Cell{X: 5, Y: 5}, core.DirRight)
	h.c.gs.Session.Score = 7

	hz := &component.Item{ID: h.c.gs.NextItemID(), Cell: core.Cell{X: 6, Y: 5}, Kind: component.KindHazard, CreatedAt: h.now()}
	h.c.gs.Items.Add(hz)
	h.c.scheduleExpiry(hz)

	h.advance(parameter.BaseTickInterval)

	sum, ok := h.c.Summary()
	if !ok || sum.Reason != ReasonHazard || sum.Score != 7 {
		t.Errorf("summary = %+v, want hazard with score 7", sum)
	}
	if n := len(h.c.gs.Effects.Particles); n != parameter.BurstHazardCount {
		t.Errorf("particles = %d, want %d", n, parameter.BurstHazardCount)
	}
	if h.c.gs.Effects.Shake != parameter.ShakeHazard {
		t.Errorf("shake = %v, want %v", h.c.gs.Effects.Shake, parameter.ShakeHazard)
	}
	if h.sched.Pending() != 0 {
		t.Errorf("pending = %d after end, want 0", h.sched.Pending())
	}
}

func TestRestartFromEnded(t *testing.T) {
	h := newHarness(t)
	h.start()
	first := h.c.gs.Session.ID
	h.c.End(h.now(), ReasonWall)

	if !h.c.Apply(input.IntentStart, h.now()) {
		t.Fatal("start refused on end screen")
	}
	if h.c.gs.Session.ID == first {
		t.Error("restart reused session id")
	}
	if _, ok := h.c.Summary(); ok {
		t.Error("stale summary after restart")
	}
	if got := h.reg.Ints.Get(status.KeySessionsPlayed).Load(); got != 2 {
		t.Errorf("session.played = %d, want 2", got)
	}
}

func TestSnapshotPerPhase(t *testing.T) {
	h := newHarness(t)
	var snap engine.Snapshot

	h.c.Snapshot(&snap, h.now())
	if snap.Phase != engine.PhaseMenu || snap.Summary != nil {
		t.Errorf("menu snapshot phase %v summary %v", snap.Phase, snap.Summary)
	}

	h.start()
	h.advance(time.Second / 2)
	h.c.Snapshot(&snap, h.now())
	if snap.Phase != engine.PhaseRunning || snap.HUD.SpeedLabel != "Slow" {
		t.Errorf("running snapshot phase %v speed %q", snap.Phase, snap.HUD.SpeedLabel)
	}
	if len(snap.Snake) != h.c.gs.Snake.Len() || len(snap.Items) != h.c.gs.Items.Len() {
		t.Error("snapshot does not mirror state")
	}

	h.c.End(h.now(), ReasonSelf)
	h.c.Snapshot(&snap, h.now().Add(time.Hour))
	if snap.Summary == nil || snap.Summary.Reason != ReasonSelf {
		t.Fatalf("ended snapshot summary = %v", snap.Summary)
	}
	if snap.HUD.Elapsed != snap.Summary.Survival {
		t.Errorf("ended elapsed %v, want frozen %v", snap.HUD.Elapsed, snap.Summary.Survival)
	}
}

func TestSetOptionsAppliesAtNextStart(t *testing.T) {
	h := newHarness(t)
	h.start()

	opts := DefaultOptions()
	opts.Grid = core.NewGrid(200, 20)
	opts.Pace.Base = 150 * time.Millisecond
	h.c.SetOptions(opts)

	if h.c.gs.Grid.TileCount != 20 {
		t.Error("options applied mid-session")
	}

	h.c.End(h.now(), ReasonWall)
	h.start()
	if h.c.gs.Grid.TileCount != 10 {
		t.Errorf("TileCount = %d, want 10", h.c.gs.Grid.TileCount)
	}
	if head, _ := h.c.gs.Snake.Head(); head != (core.Cell{X: 5, Y: 5}) {
		t.Errorf("head = %v, want {5 5}", head)
	}
	if h.sched.TickInterval() != 150*time.Millisecond {
		t.Errorf("tick interval = %v, want 150ms", h.sched.TickInterval())
	}
}

func TestIndependentControllers(t *testing.T) {
	a := newHarness(t)
	b := newHarness(t)
	a.start()

	if b.c.Phase() != engine.PhaseMenu {
		t.Error("starting one controller changed another")
	}
	a.advance(time.Second)
	if b.sched.TickCount() != 0 {
		t.Error("ticks leaked across controllers")
	}
}

func TestNewRejectsEmptyBoard(t *testing.T) {
	opts := DefaultOptions()
	opts.Grid = core.NewGrid(10, 20)
	if _, err := New(opts, engine.NewScheduler(), engine.NewMockTimeProvider(epoch), nil, nil); err == nil {
		t.Error("New accepted an empty board")
	}
}
