package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  24,
			Height: 24,
		},
		Tick: TickConfig{
			IntervalMS: 150,
		},
		Snake: SnakeRules{
			StartDirection: "up",
			Reversal:       "collide",
		},
		Food: FoodConfig{
			MaxAttempts: 64,
		},
	}
}
