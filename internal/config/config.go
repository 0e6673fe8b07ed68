// Package config loads pathrace settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/katalvlaran/pathrace/algorithms"
	"github.com/katalvlaran/pathrace/maze"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxStepDelay caps the pause between animation rounds.
const MaxStepDelay = 100 * time.Millisecond

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Grid struct {
		Width  int    `env:"GRID_WIDTH" envDefault:"30"`
		Height int    `env:"GRID_HEIGHT" envDefault:"21"`
		Preset string `env:"GRID_PRESET" envDefault:"blank"`
		Seed   int64  `env:"GRID_SEED" envDefault:"0"`
	}
	Session struct {
		Algorithms string        `env:"SESSION_ALGORITHMS" envDefault:"dijkstra,bfs,astar,greedy"`
		StepDelay  time.Duration `env:"SESSION_STEP_DELAY" envDefault:"12ms"`
		MaxSteps   int           `env:"SESSION_MAX_STEPS" envDefault:"100000"`
	}
	Render struct {
		CellSize int `env:"RENDER_CELL_SIZE" envDefault:"12"`
		Columns  int `env:"RENDER_COLUMNS" envDefault:"2"`
	}
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and that names resolve.
func (c *Config) Validate() error {
	switch {
	case c.HTTP.Port < 0 || c.HTTP.Port > 65535:
		return fmt.Errorf("%w: HTTP_PORT %d", ErrInvalidConfig, c.HTTP.Port)
	case c.Grid.Width < maze.MinSize || c.Grid.Height < maze.MinSize:
		return fmt.Errorf("%w: grid %dx%d smaller than %d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height, maze.MinSize)
	case c.Grid.Width > maze.MaxSize || c.Grid.Height > maze.MaxSize:
		return fmt.Errorf("%w: grid %dx%d larger than %d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height, maze.MaxSize)
	case c.Session.StepDelay < 0 || c.Session.StepDelay > MaxStepDelay:
		return fmt.Errorf("%w: SESSION_STEP_DELAY %s outside [0, %s]", ErrInvalidConfig, c.Session.StepDelay, MaxStepDelay)
	case c.Session.MaxSteps < 0:
		return fmt.Errorf("%w: SESSION_MAX_STEPS %d", ErrInvalidConfig, c.Session.MaxSteps)
	case c.Render.CellSize < 1 || c.Render.Columns < 1:
		return fmt.Errorf("%w: render cell size %d, columns %d", ErrInvalidConfig, c.Render.CellSize, c.Render.Columns)
	}
	if _, err := maze.ParsePreset(c.Grid.Preset); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	return nil
}

// Kinds resolves SESSION_ALGORITHMS.
func (c *Config) Kinds() ([]algorithms.Kind, error) {
	kinds, err := algorithms.ParseKinds(c.Session.Algorithms)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: SESSION_ALGORITHMS is empty", ErrInvalidConfig)
	}
	return kinds, nil
}

// Preset resolves GRID_PRESET.
func (c *Config) Preset() (maze.Preset, error) {
	p, err := maze.ParsePreset(c.Grid.Preset)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}
