package chase

import (
	"math"

	"github.com/iburimskiy/alien-chase/internal/config"
)

// ClampDelta bounds a frame delta to [0, config.MaxDeltaMs] so a stall
// (a hidden window, a debugger pause) doesn't turn into one huge jump.
func ClampDelta(dtMs float64) float64 {
	if dtMs < 0 || math.IsNaN(dtMs) {
		return 0
	}
	if dtMs > config.MaxDeltaMs {
		return config.MaxDeltaMs
	}
	return dtMs
}

// Ease moves current a fraction of the way to target. The fraction is
// applied per tick, not per second.
func Ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Step advances the whole scene by dtMs milliseconds.
func (s *Scene) Step(dtMs float64) {
	dt := ClampDelta(dtMs)
	sec := dt / 1000
	s.Elapsed += dt

	s.stepAlien(sec)
	s.stepHumans(sec)

	if s.Alien.X > s.Width+config.ResetMargin {
		s.ResetChase()
	}

	s.stepTears(dt, sec)
	s.stepEmbers(sec)
}

func (s *Scene) stepAlien(sec float64) {
	a := &s.Alien
	a.Wobble += config.AlienWobbleRate * sec
	a.Pulse += config.AlienPulseRate * sec
	a.X += a.VX * sec

	drift := s.Height*config.AlienDriftY + math.Sin(s.Elapsed*config.AlienDriftFreq)*config.AlienDriftAmp
	a.BaseY = Ease(a.BaseY, drift, config.HeightEase)
	a.Y = a.BaseY + math.Sin(a.Wobble*config.AlienBobFreq)*config.AlienBobAmp
}

func (s *Scene) stepHumans(sec float64) {
	for i := range s.Humans {
		fi := float64(i)
		h := &s.Humans[i]
		h.Wobble += config.HumanWobbleRate * sec
		h.Pulse += config.HumanPulseRate * sec

		targetX := s.Alien.X - config.HumanLag - fi*config.HumanSpacing
		h.X = Ease(h.X, targetX, config.FollowEase)
		h.BaseY = Ease(h.BaseY, s.Alien.BaseY+config.HumanDropY+fi*config.HumanStaggerY, config.HeightEase)
		h.Y = h.BaseY + math.Sin(h.Wobble*config.HumanBobFreq)*config.HumanBobAmp
	}
}

// stepTears fades existing tears, drops the spent ones, then emits a new
// pair if the timer has run out.
func (s *Scene) stepTears(dt, sec float64) {
	live := s.Tears[:0]
	for _, t := range s.Tears {
		t.Y += t.VY * sec
		t.Alpha -= config.TearFade * sec
		if t.Alpha > 0 {
			live = append(live, t)
		}
	}
	// clear the tail so dropped tears don't linger in the backing array
	for i := len(live); i < len(s.Tears); i++ {
		s.Tears[i] = Tear{}
	}
	s.Tears = live

	s.TearTimer += dt
	if s.TearTimer <= config.TearIntervalMs {
		return
	}
	s.TearTimer = 0

	headY := s.Alien.Y - config.TearOffsetY
	s.Tears = append(s.Tears,
		Tear{X: s.Alien.X + config.TearOffsetX, Y: headY, VY: 40 + s.rng.Float64()*30, Alpha: 1},
		Tear{X: s.Alien.X - config.TearOffsetX, Y: headY, VY: 45 + s.rng.Float64()*30, Alpha: 1},
	)
}

func (s *Scene) stepEmbers(sec float64) {
	for i := range s.Embers {
		e := &s.Embers[i]
		e.Y += e.Speed * sec
		e.X += math.Sin(e.Y*config.EmberSwayK) * config.EmberSway * sec

		if e.Y > s.Height+config.EmberMargin {
			e.Y = -config.EmberMargin
			e.X = s.rng.Float64() * s.Width
		}
	}
}
