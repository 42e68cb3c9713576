package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  10,
			Height: 10,
		},
		Timing: TimingConfig{
			MoveIntervalMs: 150,
			FoodIntervalMs: 1000,
		},
		Spawn: SpawnConfig{
			Head:       PointConfig{X: 3, Y: 3},
			Direction:  "up",
			TailOffset: PointConfig{X: 0, Y: -1},
		},
		Input: InputConfig{
			HoldFrames: 9,
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
	}
}
