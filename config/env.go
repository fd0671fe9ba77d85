package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "VISNAKE_"

// LoadDotEnv loads variables from path into the process environment without overriding existing ones
// A missing file is not an error
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// ApplyEnv overlays VISNAKE_* variables read through lookup onto cfg
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs []error

	intVar := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	durVar := func(name string, dst *Duration) {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = Duration(d)
		}
	}
	boolVar := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	intVar("CANVAS_SIZE", &cfg.Board.CanvasSize)
	intVar("CELL_SIZE", &cfg.Board.CellSize)
	durVar("BASE_INTERVAL", &cfg.Timing.BaseInterval)
	durVar("MIN_INTERVAL", &cfg.Timing.MinInterval)
	durVar("INTERVAL_STEP", &cfg.Timing.IntervalStep)
	durVar("HAZARD_LIFETIME", &cfg.Timing.HazardLifetime)
	boolVar("AUDIO", &cfg.Audio)
	boolVar("DEBUG", &cfg.Debug)
	if v, ok := lookup(EnvPrefix + "SCREENSHOT_DIR"); ok {
		cfg.ScreenshotDir = v
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			cfg.Seed = n
		}
	}
	return errors.Join(errs...)
}

// Resolve is the full load order: defaults, file, .env, environment, then validation
func Resolve(path, dotenv string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if dotenv != "" {
		if err := LoadDotEnv(dotenv); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
