package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "path to the TOML config file")
	envFlag    = flag.String("env", ".env", "optional .env file with VISNAKE_* overrides")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/vi-snake.log and show the status overlay")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 for time based")
	watchFlag  = flag.Bool("watch", true, "reload the config file when it changes")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Resolve(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets command-line flags win over file and environment values
func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio init failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := engine.NewMonotonicTimeProvider()
	a, err := newApp(screen, clock, cfg, uint64(time.Now().UnixNano()), sound, cancel)
	if err != nil {
		return err
	}

	inbox := make(chan func(now time.Time), parameter.InboxSize)
	post := func(fn func(now time.Time)) {
		select {
		case inbox <- fn:
		case <-ctx.Done():
		}
	}

	// Terminal events
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			post(func(now time.Time) { a.handleEvent(ev, now) })
		}
	})

	// Frame pacing
	core.Go(func() {
		t := time.NewTicker(parameter.FrameUpdateInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				post(a.renderFrame)
			}
		}
	})

	if *watchFlag {
		core.Go(func() {
			err := config.Watch(ctx, *configFlag, func(c config.Config) {
				applyFlags(&c)
				post(func(time.Time) { a.reload(c) })
			})
			if err != nil {
				log.Printf("config watch disabled: %v", err)
			}
		})
	}

	log.Printf("vi-snake started, board %dx%d", cfg.Board.CanvasSize/cfg.Board.CellSize, cfg.Board.CanvasSize/cfg.Board.CellSize)
	err = a.sched.Run(ctx, clock, inbox, a.dispatch)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
