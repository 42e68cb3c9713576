package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

type keyBinding struct {
	key core.Key
	dir grid.Direction
}

// keyPriority is the order keys are inspected in. The first active key wins.
var keyPriority = [...]keyBinding{
	{core.KeyA, grid.Left},
	{core.KeyD, grid.Right},
	{core.KeyW, grid.Up},
	{core.KeyS, grid.Down},
	{core.KeyArrowLeft, grid.Left},
	{core.KeyArrowRight, grid.Right},
	{core.KeyArrowUp, grid.Up},
	{core.KeyArrowDown, grid.Down},
}

// requestedDirection maps the active keys to a direction, falling back to
// current when no direction key is active.
func requestedDirection(keys core.KeySource, current grid.Direction) grid.Direction {
	if keys == nil {
		return current
	}
	for _, b := range keyPriority {
		if keys.Active(b.key) {
			return b.dir
		}
	}
	return current
}

// bufferInput is the first stage of a frame.
func (s *State) bufferInput(keys core.KeySource) {
	_, head := s.Head()
	s.buffered = requestedDirection(keys, head.Direction)
}
