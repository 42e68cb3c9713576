// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Timing TimingConfig `yaml:"timing"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

// ArenaConfig defines the playing field size in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the cadences of the time-gated stages.
type TimingConfig struct {
	MoveIntervalMs int `yaml:"move_interval_ms"`
	FoodIntervalMs int `yaml:"food_interval_ms"`
}

// SpawnConfig defines where the snake starts after startup and every reset.
type SpawnConfig struct {
	Head       PointConfig `yaml:"head"`
	Direction  string      `yaml:"direction"`
	TailOffset PointConfig `yaml:"tail_offset"`
}

// PointConfig is a YAML cell coordinate.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// InputConfig defines how press-only terminal input is turned into held keys.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"`
}

// RenderConfig defines how arena cells map to terminal cells.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"`
}

// GridArena returns the arena as a grid value.
func (c SnakeConfig) GridArena() grid.Arena {
	return grid.Arena{Width: c.Arena.Width, Height: c.Arena.Height}
}

// MoveInterval returns the movement cadence.
func (c SnakeConfig) MoveInterval() time.Duration {
	return time.Duration(c.Timing.MoveIntervalMs) * time.Millisecond
}

// FoodInterval returns the food spawn cadence.
func (c SnakeConfig) FoodInterval() time.Duration {
	return time.Duration(c.Timing.FoodIntervalMs) * time.Millisecond
}

// StartHead returns the head start position.
func (c SnakeConfig) StartHead() grid.Position {
	return grid.Position{X: c.Spawn.Head.X, Y: c.Spawn.Head.Y}
}

// StartTail returns the position of the initial tail segment.
func (c SnakeConfig) StartTail() grid.Position {
	return c.StartHead().Add(grid.Position{X: c.Spawn.TailOffset.X, Y: c.Spawn.TailOffset.Y})
}

// StartDirection returns the parsed initial direction.
// Validate guarantees it parses; an invalid value falls back to Up.
func (c SnakeConfig) StartDirection() grid.Direction {
	d, err := grid.ParseDirection(c.Spawn.Direction)
	if err != nil {
		return grid.Up
	}
	return d
}

// Validate reports every problem found in the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Timing.MoveIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.move_interval_ms must be positive, got %d", c.Timing.MoveIntervalMs))
	}
	if c.Timing.FoodIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.food_interval_ms must be positive, got %d", c.Timing.FoodIntervalMs))
	}
	dir, dirErr := grid.ParseDirection(c.Spawn.Direction)
	if dirErr != nil {
		errs = append(errs, fmt.Errorf("spawn.direction: %w", dirErr))
	}
	if off := c.Spawn.TailOffset; abs(off.X)+abs(off.Y) != 1 {
		errs = append(errs, fmt.Errorf("spawn.tail_offset must be one cell from the head, got (%d,%d)", off.X, off.Y))
	} else if dirErr == nil && c.StartHead().Add(dir.Delta()) == c.StartTail() {
		// No turn is accepted before the first move, so this start always collides.
		errs = append(errs, fmt.Errorf("spawn.direction %s points into the tail", dir))
	}

	arena := c.GridArena()
	if !arena.Contains(c.StartHead()) {
		errs = append(errs, fmt.Errorf("spawn.head %v outside arena", c.StartHead()))
	}
	if !arena.Contains(c.StartTail()) {
		errs = append(errs, fmt.Errorf("spawn tail %v outside arena", c.StartTail()))
	}
	if c.Input.HoldFrames < 1 {
		errs = append(errs, fmt.Errorf("input.hold_frames must be at least 1, got %d", c.Input.HoldFrames))
	}
	if c.Render.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("render.cell_width must be at least 1, got %d", c.Render.CellWidth))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
