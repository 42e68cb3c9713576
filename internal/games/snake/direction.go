package snake

import "github.com/vovakirdan/tui-snake/internal/grid"

// acceptDirection reports whether the head may turn to requested.
// A turn needs at least one move since the previous turn, and the snake can
// never reverse onto itself.
func acceptDirection(head Head, requested grid.Direction) bool {
	return head.Moved &&
		requested != head.Direction &&
		requested != head.Direction.Opposite()
}

func (s *State) updateDirection() {
	e := s.headEntity()
	head := s.heads.MustGet(e)
	if !acceptDirection(head, s.buffered) {
		return
	}
	head.Direction = s.buffered
	head.Moved = false
	s.heads.Set(e, head)
}
