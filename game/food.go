package game

import (
	"golang.org/x/exp/rand"
)

// SpawnFood returns a random cell on the grid. It does not look at the worm,
// so food can land under the body and stays uneatable until the worm moves
// off it.
func SpawnFood(rng *rand.Rand, grid Grid) Cell {
	return Cell{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
}
