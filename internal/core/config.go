package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the wall-clock time covered by one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventAte   EventKind = iota + 1 // A food item was eaten
	EventReset                      // The run ended and the game reinitialized
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Length int    // Number of chain members, head included
	Food   int    // Food items currently on the arena
	Frame  uint64 // Frames processed since start
	Resets int    // Number of resets since start
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []EventKind
}

// Has reports whether the given event occurred this frame.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e == kind {
			return true
		}
	}
	return false
}
