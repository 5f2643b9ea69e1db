package game

import (
	"github.com/gammazero/deque"
	"golang.org/x/exp/rand"
)

// InitialLength is the number of segments a new worm starts with
const InitialLength = 3

// distance kept between a new worm's head and the edge of the grid, when the
// grid is large enough for it
const (
	spawnMargin      = 5
	spawnMarginSmall = InitialLength - 1
)

// Snake is the worm: an ordered body with the head first, and the direction
// it will take on the next move
type Snake struct {
	grid Grid
	body deque.Deque[Cell]

	// first segment, kept apart from the body so a one segment worm still
	// knows where it is after its tail was removed
	head Cell

	// direction for the next move
	dir Direction

	// direction of the last move actually made
	heading Direction
}

// NewSnake creates a worm from cells (head first) facing dir.
// cells must not be empty.
func NewSnake(grid Grid, cells []Cell, dir Direction) *Snake {
	if len(cells) == 0 {
		panic("game: snake needs at least one cell")
	}
	s := &Snake{
		grid:    grid,
		head:    cells[0],
		dir:     dir,
		heading: dir,
	}
	for _, c := range cells {
		s.body.PushBack(c)
	}
	return s
}

// SpawnSnake creates a fresh worm of InitialLength segments with a random
// orientation, lying in a straight line inside the grid
func SpawnSnake(rng *rand.Rand, grid Grid) *Snake {
	dir := Directions[rng.Intn(len(Directions))]
	head := Cell{
		X: randomAxis(rng, grid.Width),
		Y: randomAxis(rng, grid.Height),
	}

	// body trails behind the head
	back := dir.Opposite().Offset()
	cells := make([]Cell, InitialLength)
	cells[0] = head
	for i := 1; i < InitialLength; i++ {
		cells[i] = cells[i-1].Add(back)
	}
	return NewSnake(grid, cells, dir)
}

// pick a coordinate in [margin, size-margin)
func randomAxis(rng *rand.Rand, size int) int {
	margin := spawnMargin
	if size < 2*spawnMargin+1 {
		margin = spawnMarginSmall
	}
	return margin + rng.Intn(size-2*margin)
}

// SetDirection changes the direction for the next move. A direction opposite
// to the current one, or to the one the worm last moved in, is rejected and
// false is returned.
func (s *Snake) SetDirection(d Direction) bool {
	if d < Up || d > Right {
		return false
	}
	if d == s.dir.Opposite() || d == s.heading.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Direction returns the direction of the next move
func (s *Snake) Direction() Direction {
	return s.dir
}

// Move adds a new head one cell along the current direction.
// The tail is handled by ConsumeOrGrow, which must run first.
func (s *Snake) Move() {
	s.head = s.head.Add(s.dir.Offset())
	s.body.PushFront(s.head)
	s.heading = s.dir
}

// ConsumeOrGrow checks the head against food. When they match the body is
// left alone, so the next Move grows the worm, and true is returned.
// Otherwise the tail is removed so the next Move keeps the length.
func (s *Snake) ConsumeOrGrow(food Cell) bool {
	if s.head == food {
		return true
	}
	s.body.PopBack()
	return false
}

// Alive reports whether the head is on the grid and clear of the body
func (s *Snake) Alive() bool {
	if !s.grid.Contains(s.head) {
		return false
	}
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == s.head {
			return false
		}
	}
	return true
}

// Head returns the first segment
func (s *Snake) Head() Cell {
	return s.head
}

// Tail returns the last segment, or the head while a one segment worm is
// between ConsumeOrGrow and Move
func (s *Snake) Tail() Cell {
	if s.body.Len() == 0 {
		return s.head
	}
	return s.body.Back()
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return s.body.Len()
}

// Score is the number of segments gained since the worm was spawned
func (s *Snake) Score() int {
	return s.body.Len() - InitialLength
}

// Each calls fn for every segment, head first
func (s *Snake) Each(fn func(i int, c Cell)) {
	for i := 0; i < s.body.Len(); i++ {
		fn(i, s.body.At(i))
	}
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []Cell {
	cells := make([]Cell, 0, s.body.Len())
	s.Each(func(_ int, c Cell) {
		cells = append(cells, c)
	})
	return cells
}
