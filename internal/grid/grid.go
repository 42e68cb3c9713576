// Package grid defines the arena the snake lives on: its dimensions, the
// integer cell position type and the four movement directions.
package grid

import "fmt"

// Position is a cell coordinate. x grows to the right, y grows upwards.
// The type itself does not enforce arena bounds.
type Position struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction.
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the one-cell offset for a move in direction d.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{Y: 1}
	case Down:
		return Position{Y: -1}
	case Left:
		return Position{X: -1}
	default:
		return Position{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a lowercase direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return Up, fmt.Errorf("grid: unknown direction %q", s)
}

// Arena is the playing field size in cells.
type Arena struct {
	Width  int
	Height int
}

// Cells returns every cell of the arena, column by column.
func (a Arena) Cells() []Position {
	cells := make([]Position, 0, a.Width*a.Height)
	for x := 0; x < a.Width; x++ {
		for y := 0; y < a.Height; y++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// Contains reports whether p is one of the arena cells.
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// OutOfBounds reports whether a head at p has hit a wall.
//
// The upper bound is compared against the dimension itself, so the column
// x == Width and the row y == Height are still survivable.
func (a Arena) OutOfBounds(p Position) bool {
	return p.X < 0 || p.Y < 0 || p.X > a.Width || p.Y > a.Height
}
