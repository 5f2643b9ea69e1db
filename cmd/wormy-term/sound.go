package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/mikenye/wormy/game"
)

const sampleRate = beep.SampleRate(44100)

// tones played on game events
const (
	eatFreq     = 880
	eatLength   = 50 * time.Millisecond
	deathFreq   = 220
	deathLength = 300 * time.Millisecond
)

// sound plays short sine tones through the speaker
type sound struct {
	enabled bool
}

// newSound opens the speaker; a failure leaves the game silent
func newSound() *sound {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio initialization failed: %v", err)
		return &sound{}
	}
	return &sound{enabled: true}
}

func (s *sound) tone(freq float64, length time.Duration) {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("tone %vHz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(length), sine))
}

func (s *sound) close() {
	if s != nil && s.enabled {
		speaker.Close()
	}
}

// listener beeps and logs on game events
type listener struct {
	sound *sound
}

func (l listener) Ate(score int) {
	log.Printf("food eaten, score %d", score)
	l.sound.tone(eatFreq, eatLength)
}

func (l listener) Died(score int) {
	log.Printf("worm died, final score %d", score)
	l.sound.tone(deathFreq, deathLength)
}

func (l listener) StateChanged(from, to game.State) {
	log.Printf("state %v -> %v", from, to)
}
