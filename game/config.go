package game

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrQuit is returned by Controller.Update when the player asked to quit
	ErrQuit = errors.New("game: quit requested")

	// ErrInvalidConfig is wrapped by every Config.Validate failure
	ErrInvalidConfig = errors.New("game: invalid config")
)

// smallest grid a worm can be spawned in
const minGridSize = 2*spawnMarginSmall + 1

// Config holds the game settings
type Config struct {
	// size of the grid (in cells)
	Width, Height int

	// size of a cell in pixels, for pixel based front ends
	CellSize int

	// logical ticks per second (worm speed)
	TickRate int

	// frames per second the front end calls Update at
	FrameRate int

	// time the game over screen ignores input for
	GameOverDelay time.Duration

	// random seed, 0 seeds from the clock
	Seed uint64

	// title shown on the start screen and window
	Title string
}

// DefaultConfig returns the classic Wormy settings: a 640x480 window
// of 20px cells, moving 5 times a second
func DefaultConfig() Config {
	return Config{
		Width:         32,
		Height:        24,
		CellSize:      20,
		TickRate:      5,
		FrameRate:     60,
		GameOverDelay: 500 * time.Millisecond,
		Title:         "Wormy!",
	}
}

// Grid returns the grid described by the config
func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height}
}

// FramesPerTick is the number of Update calls between two logical ticks
func (c Config) FramesPerTick() int {
	return c.FrameRate / c.TickRate
}

// Validate checks the config can run a game
func (c Config) Validate() error {
	switch {
	case c.Width < minGridSize || c.Height < minGridSize:
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, minGridSize, minGridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	case c.FrameRate%c.TickRate != 0:
		return fmt.Errorf("%w: frame rate %d is not a multiple of tick rate %d", ErrInvalidConfig, c.FrameRate, c.TickRate)
	case c.GameOverDelay < 0:
		return fmt.Errorf("%w: game over delay %s", ErrInvalidConfig, c.GameOverDelay)
	}
	return nil
}
