package snake

import "github.com/vovakirdan/tui-snake/internal/grid"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64          `yaml:"frame"`
	Resets    int             `yaml:"resets"`
	Arena     grid.Arena      `yaml:"arena"`
	Head      grid.Position   `yaml:"head"`
	Direction string          `yaml:"direction"`
	Buffered  string          `yaml:"buffered"`
	Moved     bool            `yaml:"moved"`
	Chain     []grid.Position `yaml:"chain"`
	Food      []grid.Position `yaml:"food"`
	LastTail  *grid.Position  `yaml:"last_tail,omitempty"`
}

// Snapshot returns the current state for determinism verification.
func (s *State) Snapshot() Snapshot {
	headPos, head := s.Head()
	snap := Snapshot{
		Frame:     s.frame,
		Resets:    s.resets,
		Arena:     s.opts.Arena,
		Head:      headPos,
		Direction: head.Direction.String(),
		Buffered:  s.Buffered().String(),
		Moved:     head.Moved,
		Chain:     s.Chain(),
		Food:      s.Food(),
	}
	if tail, ok := s.LastTail(); ok {
		snap.LastTail = &tail
	}
	return snap
}

// Snapshot returns the game's snapshot, or the zero value before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return g.state.Snapshot()
}
