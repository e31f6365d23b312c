// Package config loads the game configuration from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/sokoban/transition"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window     Window     `yaml:"window"`
	Transition Transition `yaml:"transition"`
	Screens    Screens    `yaml:"screens"`
}

// Window is the logical resolution and the integer window scale.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// Transition configures the tile wipe between levels.
type Transition struct {
	TileSize      int           `yaml:"tile_size"`
	Columns       int           `yaml:"columns"`
	Rows          int           `yaml:"rows"`
	StripInterval time.Duration `yaml:"strip_interval"`
	TileDuration  time.Duration `yaml:"tile_duration"`
}

// Screens holds the screen-level fade durations.
type Screens struct {
	GameplayFadeIn time.Duration `yaml:"gameplay_fade_in"`
	SplashFadeOut  time.Duration `yaml:"splash_fade_out"`
	MenuFadeOut    time.Duration `yaml:"menu_fade_out"`
}

// TileConfig converts to the transition package's constructor input.
func (t Transition) TileConfig() transition.Config {
	return transition.Config{
		TileSize:      t.TileSize,
		Columns:       t.Columns,
		Rows:          t.Rows,
		StripInterval: t.StripInterval,
		TileDuration:  t.TileDuration,
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d", ErrInvalidConfig, c.Window.Scale)
	}
	if err := c.Transition.TileConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s := c.Screens
	if s.GameplayFadeIn < 0 || s.SplashFadeOut < 0 || s.MenuFadeOut < 0 {
		return fmt.Errorf("%w: negative screen fade", ErrInvalidConfig)
	}
	return nil
}
