// Package config provides YAML-based configuration loading and pace
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Tick  TickConfig  `yaml:"tick"`
	Snake SnakeRules  `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
}

// BoardConfig defines the playing field size, wall ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines the simulation pace.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// SnakeRules defines the snake's starting heading and reversal handling.
type SnakeRules struct {
	StartDirection string `yaml:"start_direction"` // "up", "down", "left", "right"
	Reversal       string `yaml:"reversal"`        // "collide" or "reject"
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 3 || c.Board.Height < 3 {
		return fmt.Errorf("%w: board %dx%d, need at least 3x3", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("%w: tick interval %dms", ErrInvalidConfig, c.Tick.IntervalMS)
	}
	switch c.Snake.StartDirection {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: start direction %q", ErrInvalidConfig, c.Snake.StartDirection)
	}
	switch c.Snake.Reversal {
	case "collide", "reject":
	default:
		return fmt.Errorf("%w: reversal policy %q", ErrInvalidConfig, c.Snake.Reversal)
	}
	if c.Food.MaxAttempts < 0 {
		return fmt.Errorf("%w: food attempts %d", ErrInvalidConfig, c.Food.MaxAttempts)
	}
	return nil
}

// Interval returns the tick interval.
func (c SnakeConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// TickRate returns ticks per second, at least one.
func (c SnakeConfig) TickRate() int {
	if c.Tick.IntervalMS <= 0 {
		return 1
	}
	return max(1, (1000+c.Tick.IntervalMS/2)/c.Tick.IntervalMS)
}

// Runtime converts the file configuration into the config games receive.
// Screen size and seed are left at their defaults for the platform to fill.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.TickRate = c.TickRate()
	rc.StartDir = c.Snake.StartDirection
	rc.FoodAttempts = c.Food.MaxAttempts
	return rc
}
