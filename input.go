package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mikenye/wormy/game"
)

// ebiten keys the game knows about
var keymap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowDown:  game.KeyArrowDown,
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyS:          game.KeyS,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeyEscape:     game.KeyEscape,
}

// keyboard turns ebiten's per-frame key state into game events
type keyboard struct {
	keys   []ebiten.Key
	events []game.Event
}

func newKeyboard() *keyboard {
	return &keyboard{
		keys:   make([]ebiten.Key, 0, 8),
		events: make([]game.Event, 0, 8),
	}
}

// Poll returns the keys pressed and released since the last frame
func (k *keyboard) Poll() []game.Event {
	k.events = k.events[:0]

	if ebiten.IsWindowBeingClosed() {
		k.events = append(k.events, game.Event{Kind: game.Quit})
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		k.events = append(k.events, game.Event{Kind: game.KeyDown, Key: gameKey(key)})
	}

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		k.events = append(k.events, game.Event{Kind: game.KeyUp, Key: gameKey(key)})
	}

	return k.events
}

func gameKey(key ebiten.Key) game.Key {
	if gk, ok := keymap[key]; ok {
		return gk
	}
	return game.KeyOther
}
