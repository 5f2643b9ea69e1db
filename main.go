package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mikenye/wormy/game"
)

// Game adapts the game controller to ebiten
type Game struct {
	cfg game.Config

	// game state machine
	ctrl *game.Controller

	// keyboard and window events
	input *keyboard

	// draws frames onto the screen image
	renderer *screenRenderer
}

// update function, ebiten calls this every tick (cfg.FrameRate times per second)
func (g *Game) Update() error {
	err := g.ctrl.Update()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// draw function, ebiten calls this every tick to render the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.dst = screen
	g.ctrl.Draw(g.renderer)
}

// layout function, called by Ebiten to size window & content
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// return the size of the screen in pixels based on game width/height in cells
func (g *Game) ScreenSize() (w, h int) {
	return g.cfg.Width * g.cfg.CellSize, g.cfg.Height * g.cfg.CellSize
}

// logs game events
type logListener struct{}

func (logListener) Ate(score int) {
	log.Printf("food eaten, score %d", score)
}

func (logListener) Died(score int) {
	log.Printf("worm died, final score %d", score)
}

func (logListener) StateChanged(from, to game.State) {
	log.Printf("state %v -> %v", from, to)
}

// create a new game object
func NewGame(cfg game.Config) (*Game, error) {
	g := Game{
		cfg:      cfg,
		input:    newKeyboard(),
		renderer: newScreenRenderer(cfg),
	}

	ctrl, err := game.NewController(cfg, g.input, game.WithListener(logListener{}))
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl

	return &g, nil
}

// main function
func main() {
	cfg := game.DefaultConfig()

	// create new game object
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// set up game window
	screenWidth, screenHeight := g.ScreenSize()
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FrameRate)

	// closing the window becomes a quit event
	ebiten.SetWindowClosingHandled(true)

	// start game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
