package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/renderer"
	"github.com/lixenwraith/vi-snake/session"
	"github.com/lixenwraith/vi-snake/status"
)

// app ties the controller to the terminal; every method runs on the scheduler loop
type app struct {
	screen  tcell.Screen
	clock   engine.TimeProvider
	sched   *engine.Scheduler
	events  *event.EventQueue
	router  *event.Router[*app]
	reg     *status.Registry
	ctrl    *session.Controller
	orch    *render.RenderOrchestrator
	debug   *renderer.DebugRenderer
	sound   *audio.SoundManager
	keys    *input.KeyTable
	snap    engine.Snapshot
	seed    uint64
	quit    func()
	shotDir string
}

func newApp(screen tcell.Screen, clock engine.TimeProvider, cfg config.Config, seed uint64, sound *audio.SoundManager, quit func()) (*app, error) {
	a := &app{
		screen: screen,
		clock:  clock,
		sched:  engine.NewScheduler(),
		events: event.NewEventQueue(),
		reg:    status.NewRegistry(),
		sound:  sound,
		seed:   seed,
		quit:   quit,
	}
	a.router = event.NewRouter[*app](a.events)
	a.router.Register(audio.NewHandler[*app](sound))
	a.router.Register(eventCounter{})

	ctrl, err := session.New(cfg.Options(seed), a.sched, clock, a.events, a.reg)
	if err != nil {
		return nil, err
	}
	a.ctrl = ctrl

	a.orch = render.NewRenderOrchestrator(screen, seed)
	a.debug = renderer.RegisterAll(a.orch, a.reg, cfg.Debug)

	if err := a.applyConfig(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// applyConfig installs settings that are safe to change at any time
// Board and pacing changes are deferred by the controller to the next Start
func (a *app) applyConfig(cfg config.Config) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		over, err := input.ParseBindings(cfg.Keys)
		if err != nil {
			return err
		}
		keys.Merge(over)
	}
	a.keys = keys
	a.shotDir = cfg.ScreenshotDir
	a.ctrl.SetOptions(cfg.Options(a.seed))
	a.debug.SetVisible(cfg.Debug)
	a.sound.SetEnabled(cfg.Audio)
	a.reg.Bools.Get(status.KeyAudioEnabled).Store(cfg.Audio)
	return nil
}

// reload is the hot-reload entry; a bad key table keeps the previous one
func (a *app) reload(cfg config.Config) {
	if err := a.applyConfig(cfg); err != nil {
		log.Printf("config reload: %v", err)
	}
}

func (a *app) inputContext() input.Context {
	switch a.ctrl.Phase() {
	case engine.PhaseRunning, engine.PhasePaused:
		return input.ContextPlay
	}
	return input.ContextScreen
}

// handleEvent translates a terminal event and applies it
func (a *app) handleEvent(ev tcell.Event, now time.Time) {
	in := a.keys.Translate(a.inputContext(), ev)
	switch in {
	case input.IntentNone:
		return
	case input.IntentQuit:
		if a.ctrl.Phase() == engine.PhaseRunning || a.ctrl.Phase() == engine.PhasePaused {
			a.ctrl.End(now, session.ReasonQuit)
		}
		a.quit()
		return
	case input.IntentResize:
		a.orch.Resize()
		a.renderFrame(now)
		return
	case input.IntentScreenshot:
		a.screenshot(now)
		return
	}
	if a.ctrl.Apply(in, now) {
		a.renderFrame(now)
	}
}

func (a *app) screenshot(now time.Time) {
	a.ctrl.Snapshot(&a.snap, now)
	sx, sy := a.orch.ShakeOffset(a.snap.Shake)
	path, err := render.SavePNG(a.shotDir, &a.snap, now, sx, sy)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("screenshot saved to %s", path)
}

func (a *app) renderFrame(now time.Time) {
	a.ctrl.Snapshot(&a.snap, now)
	a.orch.RenderFrame(&a.snap, now)
}

// dispatch drains the event queue after each loop wake
func (a *app) dispatch() {
	a.router.DispatchAll(a)
}

// eventCounter tallies dispatched events into the status registry as event.<name>
type eventCounter struct{}

func (eventCounter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionStarted,
		event.EventSessionEnded,
		event.EventScoreChanged,
		event.EventLevelChanged,
		event.EventItemConsumed,
		event.EventHazardSpawned,
		event.EventHazardExpired,
		event.EventPaused,
		event.EventResumed,
		event.EventReturnedToMenu,
	}
}

func (eventCounter) HandleEvent(a *app, ev event.GameEvent) {
	a.reg.Ints.Get("event." + ev.Type.String()).Add(1)
}
