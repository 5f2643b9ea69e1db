package game

// Cell is a position on the grid, in cell units
type Cell struct {
	X, Y int
}

// Add returns c offset by o
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Grid is the size of the playing field, in cells
type Grid struct {
	Width, Height int
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Direction the worm is facing
type Direction uint8

// Constants for worm direction
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the direction whose offset is the inverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Offset returns the unit step for one move in direction d
func (d Direction) Offset() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	}
	return Cell{}
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
	}
	return "none"
}
