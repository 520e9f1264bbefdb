// Package chase holds the animation state of the alien chase and the rules
// that advance it. It has no graphics dependencies; rendering lives in
// internal/game.
package chase

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/alien-chase/internal/config"
)

// Runner is an animated figure: the fleeing alien or one of its pursuers.
// Wobble and Pulse grow without bound; only sin/cos are taken of them.
type Runner struct {
	X, Y   float64
	BaseY  float64
	VX     float64 // px/s
	Wobble float64 // radians, drives limbs
	Pulse  float64 // radians, drives body bob
}

// Tear is a droplet shed from the alien's head.
type Tear struct {
	X, Y  float64
	VY    float64
	Alpha float64
}

// Ember is an ambient particle drifting down the sky.
type Ember struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Hue    float64
}

// Scene is the complete animation state. It is owned by the loop driver and
// only ever touched from the frame callback.
type Scene struct {
	Width, Height float64

	Alien  Runner
	Humans [config.HumanCount]Runner
	Tears  []Tear
	Embers [config.EmberCount]Ember

	TearTimer float64 // ms since last emission
	Elapsed   float64 // ms since mount, drives the vertical drift
	Resets    int

	rng *rand.Rand
}

// NewScene allocates a scene for a surface of the given logical size.
// Pursuer phases and ember placement are drawn from rng.
func NewScene(width, height float64, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Scene{
		Width:  width,
		Height: height,
		rng:    rng,
	}

	s.Alien = Runner{
		X:     width * config.AlienStartX,
		Y:     height * config.AlienStartY,
		BaseY: height * config.AlienStartY,
		VX:    config.AlienStartSpeed,
	}

	for i := range s.Humans {
		fi := float64(i)
		s.Humans[i] = Runner{
			X:      width * (0.05 - fi*0.08),
			Y:      height * 0.62,
			BaseY:  height*0.62 + fi*12,
			VX:     140 + fi*18,
			Wobble: rng.Float64() * 2 * math.Pi,
			Pulse:  rng.Float64() * 2 * math.Pi,
		}
	}

	for i := range s.Embers {
		s.Embers[i] = Ember{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			Radius: rng.Float64()*config.EmberSizeVar + config.EmberMinSize,
			Speed:  10 + rng.Float64()*20,
			Hue:    180 + rng.Float64()*60,
		}
	}

	return s
}

// Resize updates the bounds used by the stepper. Entities keep their
// positions; anything now off-surface is brought back by the usual reset
// and wrap rules.
func (s *Scene) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// ResetChase restarts the chase from the left edge with a fresh height and
// speed for the alien, lining the humans up behind it.
func (s *Scene) ResetChase() {
	s.Resets++
	s.Alien.X = s.Width * config.AlienStartX
	s.Alien.BaseY = s.Height * (config.ResetMinY + s.rng.Float64()*config.ResetRangeY)
	s.Alien.VX = config.ResetMinSpeed + s.rng.Float64()*config.ResetSpeedVar

	for i := range s.Humans {
		fi := float64(i)
		h := &s.Humans[i]
		h.X = s.Width * (0.05 - fi*0.08)
		h.BaseY = s.Alien.BaseY + 15 + fi*10
		h.VX = 150 + fi*15 + s.rng.Float64()*25
	}
}
