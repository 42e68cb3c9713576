package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// resetOnGameOver tears the round down and starts a fresh snake when the
// movement stage reported a collision this frame.
func (s *State) resetOnGameOver() {
	if !s.gameOver.take() {
		return
	}

	length := len(s.chain)
	for _, e := range s.kinds.Entities() {
		s.world.Despawn(e)
	}
	s.chain = nil
	s.hasLastTail = false
	s.spawnSnake()

	s.resets++
	s.events = append(s.events, core.EventReset)
	s.logger.Debug("game reset", "length", length, "resets", s.resets, "frame", s.frame)
}
