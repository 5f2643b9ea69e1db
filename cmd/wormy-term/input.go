package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/wormy/game"
)

// eventQueue collects tcell events between frames.
// Terminals report key presses only, so every press is queued as a
// press followed by a release.
type eventQueue struct {
	events []game.Event
}

// add translates ev and queues the result
func (q *eventQueue) add(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			q.events = append(q.events, game.Event{Kind: game.Quit})
			return
		}
		k := translateKey(ev.Key(), ev.Rune())
		q.events = append(q.events,
			game.Event{Kind: game.KeyDown, Key: k},
			game.Event{Kind: game.KeyUp, Key: k},
		)
	}
}

// Poll hands over everything queued since the last call
func (q *eventQueue) Poll() []game.Event {
	evs := q.events
	q.events = nil
	return evs
}

// translateKey maps a tcell key, or the rune of a KeyRune, to a game key
func translateKey(key tcell.Key, r rune) game.Key {
	switch key {
	case tcell.KeyUp:
		return game.KeyArrowUp
	case tcell.KeyDown:
		return game.KeyArrowDown
	case tcell.KeyLeft:
		return game.KeyArrowLeft
	case tcell.KeyRight:
		return game.KeyArrowRight
	case tcell.KeyEscape:
		return game.KeyEscape
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyW
		case 'a', 'A':
			return game.KeyA
		case 's', 'S':
			return game.KeyS
		case 'd', 'D':
			return game.KeyD
		}
	}
	return game.KeyOther
}
