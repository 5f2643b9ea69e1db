// Command wormy-term plays Wormy in a terminal
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/wormy/game"
)

// environment variable naming a file to append logs to
const logEnv = "WORMY_LOG"

// setupLogging sends log output to path, or discards it when path is empty,
// since writing to the terminal would tear the game screen
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// Game owns the terminal and the controller
type Game struct {
	screen   tcell.Screen
	ctrl     *game.Controller
	events   *eventQueue
	renderer *termRenderer
	sound    *sound
	fps      int
}

// NewGame sets up a game on an initialised screen
func NewGame(screen tcell.Screen, cfg game.Config, snd *sound) (*Game, error) {
	cols, rows := screen.Size()
	cfg, err := fitConfig(cfg, cols, rows)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		events:   &eventQueue{},
		renderer: newTermRenderer(screen, cfg.Grid()),
		sound:    snd,
		fps:      cfg.FrameRate,
	}
	g.ctrl, err = game.NewController(cfg, g.events, game.WithListener(listener{sound: snd}))
	if err != nil {
		return nil, err
	}
	return g, nil
}

// frame runs one controller update and redraws the screen.
// It returns false once the player quits.
func (g *Game) frame() (bool, error) {
	err := g.ctrl.Update()
	if errors.Is(err, game.ErrQuit) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	g.ctrl.Draw(g.renderer)
	g.screen.Show()
	return true, nil
}

func (g *Game) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	// PollEvent blocks, so it gets its own goroutine; it returns nil after Fini
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(g.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				g.screen.Sync()
				continue
			}
			g.events.add(ev)

		case <-ticker.C:
			running, err := g.frame()
			if err != nil || !running {
				return err
			}
		}
	}
}

// forwardEvents sends screen events to out until the screen is finalised or
// done is closed
func forwardEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) cleanup() {
	g.sound.close()
	g.screen.Fini()
}

func main() {
	if f := setupLogging(os.Getenv(logEnv)); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g, err := NewGame(screen, game.DefaultConfig(), newSound())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = g.run()
	g.cleanup()
	if err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
