package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// move advances the snake by one cell. Collisions only raise the game-over
// signal; the move itself always completes.
func (s *State) move() {
	e := s.headEntity()
	before := s.Chain()

	head := s.heads.MustGet(e)
	next := before[0].Add(head.Direction.Delta())
	head.Moved = true
	s.heads.Set(e, head)
	s.positions.Set(e, next)

	if s.opts.Arena.OutOfBounds(next) {
		s.logger.Debug("snake hit wall", "head", next, "frame", s.frame)
		s.gameOver.raise()
	}
	if slices.Contains(before, next) {
		s.logger.Debug("snake hit itself", "head", next, "frame", s.frame)
		s.gameOver.raise()
	}

	for i := 1; i < len(s.chain); i++ {
		s.positions.Set(s.chain[i], before[i-1])
	}

	s.lastTail = before[len(before)-1]
	s.hasLastTail = true
}

// followsLeader reports whether after is before shifted by one: every
// member except the head sits where its predecessor was.
func followsLeader(before, after []grid.Position) bool {
	if len(before) != len(after) {
		return false
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			return false
		}
	}
	return true
}
