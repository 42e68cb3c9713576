package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Frame runs one frame of the game with dt of elapsed time and the keys
// active during it. Stages run in a fixed order: input, direction, movement,
// game over, eating, growth, food. It returns the events the frame produced.
func (s *State) Frame(dt time.Duration, keys core.KeySource) []core.EventKind {
	s.events = s.events[:0]

	s.bufferInput(keys)
	s.updateDirection()
	if s.moveTimer.Tick(dt) {
		s.move()
	}
	s.resetOnGameOver()
	s.eat()
	s.grow()
	if s.foodTimer.Tick(dt) {
		s.spawnFood()
	}

	s.growth.clear()
	s.gameOver.clear()
	s.frame++

	if len(s.events) == 0 {
		return nil
	}
	return append([]core.EventKind(nil), s.events...)
}
