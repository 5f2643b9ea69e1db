package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// State is the screen/mode the game is in
type State uint8

// Game states
const (

	// title screen, waiting for a key
	StateStartScreen State = iota + 1

	// in-game - player steers the worm until it dies
	StateRunning

	// game over banner, waiting for a key
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "start screen"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// PromptText is shown under the start and game over screens
const PromptText = "Press a key to play."

// Listener is told about things worth a sound or a log line.
// Methods are called from Update, on the caller's goroutine.
type Listener interface {
	Ate(score int)
	Died(score int)
	StateChanged(from, to State)
}

type nopListener struct{}

func (nopListener) Ate(int)                 {}
func (nopListener) Died(int)                {}
func (nopListener) StateChanged(_, _ State) {}

// Option configures a Controller
type Option func(*Controller)

// WithRand sets the random source used for worms and food
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithListener registers l for game notifications
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listener = l
	}
}

// Controller runs the game: it polls input, steps the worm at the tick rate
// and composes frames for a Renderer. Update is meant to be called once per
// front end frame.
type Controller struct {
	cfg      Config
	grid     Grid
	input    InputSource
	rng      *rand.Rand
	listener Listener

	// state of game
	state State

	// worm and food of the current (or last) game
	snake *Snake
	food  Cell

	// key presses waiting for the next tick
	pending []Event

	// frames since the last tick, or since entering game over
	frames int

	// ticks in the current game
	ticks int

	// game over input has been cleared after the delay
	flushed bool
}

// NewController creates a controller showing the start screen
func NewController(cfg Config, input InputSource, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		grid:     cfg.Grid(),
		input:    input,
		listener: nopListener{},
		state:    StateStartScreen,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		c.rng = rand.New(rand.NewSource(seed))
	}

	// the start screen has nothing to show, but keep the accessors valid
	c.snake = SpawnSnake(c.rng, c.grid)
	c.food = SpawnFood(c.rng, c.grid)

	return c, nil
}

// Update advances the game by one front end frame. It returns ErrQuit when
// the player closes the window or presses escape, in any state.
func (c *Controller) Update() error {
	events := c.input.Poll()
	for _, ev := range events {
		if ev.quits() {
			return ErrQuit
		}
	}

	switch c.state {
	case StateStartScreen:
		c.updateStartScreen(events)
	case StateRunning:
		c.updateRunning(events)
	case StateGameOver:
		c.updateGameOver(events)
	}
	return nil
}

// update function for the start screen
func (c *Controller) updateStartScreen(events []Event) {
	if released(events) {
		c.newGame()
	}
}

// update function for when in game
func (c *Controller) updateRunning(events []Event) {
	for _, ev := range events {
		if ev.Kind == KeyDown {
			c.pending = append(c.pending, ev)
		}
	}

	// movement speed
	c.frames++
	if c.frames < c.cfg.FramesPerTick() {
		return
	}
	c.frames = 0
	c.tick()
}

// one logical step of the worm
func (c *Controller) tick() {
	for _, ev := range c.pending {
		if d, ok := ev.Key.direction(); ok {
			c.snake.SetDirection(d)
		}
	}
	c.pending = c.pending[:0]
	c.ticks++

	ate := c.snake.ConsumeOrGrow(c.food)
	if ate {
		c.food = SpawnFood(c.rng, c.grid)
	}
	c.snake.Move()

	if !c.snake.Alive() {
		c.listener.Died(c.snake.Score())
		c.changeState(StateGameOver)
		return
	}
	if ate {
		c.listener.Ate(c.snake.Score())
	}
}

// update function for when in game over state
func (c *Controller) updateGameOver(events []Event) {
	if c.frames < c.delayFrames() {
		c.frames++
		return
	}

	// drop whatever was pressed while the banner came up
	if !c.flushed {
		c.flushed = true
		return
	}

	if released(events) {
		c.newGame()
	}
}

// number of frames the game over screen ignores input for
func (c *Controller) delayFrames() int {
	return int(c.cfg.GameOverDelay * time.Duration(c.cfg.FrameRate) / time.Second)
}

// start a fresh game with a new worm and food
func (c *Controller) newGame() {
	c.snake = SpawnSnake(c.rng, c.grid)
	c.food = SpawnFood(c.rng, c.grid)
	c.pending = c.pending[:0]
	c.ticks = 0
	c.changeState(StateRunning)
}

func (c *Controller) changeState(s State) {
	from := c.state
	c.state = s
	c.frames = 0
	c.flushed = false
	c.listener.StateChanged(from, s)
}

// released reports whether events hold a key release
func released(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == KeyUp {
			return true
		}
	}
	return false
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Snake returns the worm of the current (or last) game
func (c *Controller) Snake() *Snake {
	return c.snake
}

// Food returns the food cell
func (c *Controller) Food() Cell {
	return c.food
}

// Score returns the score of the current (or last) game
func (c *Controller) Score() int {
	return c.snake.Score()
}

// Ticks returns the number of logical ticks in the current game
func (c *Controller) Ticks() int {
	return c.ticks
}

// Grid returns the playing field
func (c *Controller) Grid() Grid {
	return c.grid
}

// Config returns the settings the controller was built with
func (c *Controller) Config() Config {
	return c.cfg
}
