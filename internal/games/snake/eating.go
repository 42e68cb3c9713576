package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// eat destroys every food under the head and raises growth for each.
func (s *State) eat() {
	headPos, _ := s.Head()
	for _, food := range s.entitiesOf(KindFood) {
		if s.positions.MustGet(food) != headPos {
			continue
		}
		s.world.Despawn(food)
		s.growth.raise()
		s.events = append(s.events, core.EventAte)
		s.logger.Debug("food eaten", "at", headPos, "frame", s.frame)
	}
}

// grow appends one segment at the cell the tail vacated. Several foods eaten
// in the same frame still grow the chain by one.
func (s *State) grow() {
	if !s.growth.take() {
		return
	}
	if len(s.chain) < 2 {
		panic(fmt.Sprintf("snake: cannot grow chain of length %d", len(s.chain)))
	}
	if !s.hasLastTail {
		return
	}
	s.chain = append(s.chain, s.spawnSegment(s.lastTail))
}
