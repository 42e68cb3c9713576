package snake

import "github.com/vovakirdan/tui-snake/internal/grid"

// freeCells lists arena cells not covered by the snake, in column-major
// order. Existing food does not block a cell.
func (s *State) freeCells() []grid.Position {
	occupied := make(map[grid.Position]struct{}, len(s.chain))
	for _, p := range s.Chain() {
		occupied[p] = struct{}{}
	}

	cells := s.opts.Arena.Cells()
	free := cells[:0]
	for _, c := range cells {
		if _, ok := occupied[c]; !ok {
			free = append(free, c)
		}
	}
	return free
}

// spawnFood places one food on a uniformly chosen free cell. It reports
// false when the snake covers the whole arena.
func (s *State) spawnFood() bool {
	free := s.freeCells()
	if len(free) == 0 {
		s.logger.Debug("no free cell for food", "frame", s.frame)
		return false
	}
	pos := free[s.rng.Intn(len(free))]
	s.spawnFoodAt(pos)
	s.logger.Debug("food spawned", "at", pos, "frame", s.frame)
	return true
}
