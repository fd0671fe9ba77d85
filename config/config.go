// Package config loads runtime settings from a TOML file, an optional .env file and VISNAKE_* variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/session"
	"github.com/lixenwraith/vi-snake/system"
)

// DefaultPath is the config file looked up when -config is not given
const DefaultPath = "vi-snake.toml"

// Duration decodes TOML strings like "200ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Board holds grid geometry in pixels
type Board struct {
	CanvasSize int `toml:"canvas_size"`
	CellSize   int `toml:"cell_size"`
}

// Timing holds tick pacing and item lifetimes
type Timing struct {
	BaseInterval   Duration `toml:"base_interval"`
	MinInterval    Duration `toml:"min_interval"`
	IntervalStep   Duration `toml:"interval_step"`
	HazardLifetime Duration `toml:"hazard_lifetime"`
}

// Config is the full runtime configuration
type Config struct {
	Board         Board  `toml:"board"`
	Timing        Timing `toml:"timing"`
	Audio         bool   `toml:"audio"`
	Debug         bool   `toml:"debug"`
	ScreenshotDir string `toml:"screenshot_dir"`
	Seed          uint64 `toml:"seed"`

	// Keys maps context ("play", "screen") to key name -> action name
	Keys map[string]map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Board: Board{
			CanvasSize: parameter.CanvasSize,
			CellSize:   parameter.CellSize,
		},
		Timing: Timing{
			BaseInterval:   Duration(parameter.BaseTickInterval),
			MinInterval:    Duration(parameter.MinTickInterval),
			IntervalStep:   Duration(parameter.TickIntervalStep),
			HazardLifetime: Duration(parameter.HazardLifetime),
		},
		Audio:         true,
		ScreenshotDir: "screenshots",
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, keeping fields the document omits; unknown keys are errors
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode renders cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate rejects geometry and pacing the game cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_size must be positive, got %d", c.Board.CellSize))
	}
	if c.Board.CanvasSize <= 0 {
		errs = append(errs, fmt.Errorf("board.canvas_size must be positive, got %d", c.Board.CanvasSize))
	}
	if c.Board.CellSize > 0 && c.Board.CanvasSize > 0 && c.Board.CanvasSize/c.Board.CellSize < parameter.MinTileCount {
		errs = append(errs, fmt.Errorf("board must be at least %d cells wide", parameter.MinTileCount))
	}
	if c.Timing.MinInterval <= 0 || c.Timing.BaseInterval < c.Timing.MinInterval {
		errs = append(errs, fmt.Errorf("timing: need 0 < min_interval <= base_interval"))
	}
	if c.Timing.IntervalStep < 0 {
		errs = append(errs, fmt.Errorf("timing.interval_step must not be negative"))
	}
	if c.Timing.HazardLifetime <= 0 {
		errs = append(errs, fmt.Errorf("timing.hazard_lifetime must be positive"))
	}
	return errors.Join(errs...)
}

// Options converts the config into controller options
// A zero seed is replaced by the caller's fallback
func (c Config) Options(fallbackSeed uint64) session.Options {
	seed := c.Seed
	if seed == 0 {
		seed = fallbackSeed
	}
	return session.Options{
		Grid: core.NewGrid(c.Board.CanvasSize, c.Board.CellSize),
		Pace: system.Pace{
			Base:  time.Duration(c.Timing.BaseInterval),
			Floor: time.Duration(c.Timing.MinInterval),
			Step:  time.Duration(c.Timing.IntervalStep),
		},
		HazardLifetime: time.Duration(c.Timing.HazardLifetime),
		Seed:           seed,
	}
}
