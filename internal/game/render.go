package game

import (
	"math"

	"github.com/iburimskiy/alien-chase/internal/chase"
	"github.com/iburimskiy/alien-chase/internal/config"
)

var (
	skyGradient = gradient{
		{0, solid(config.SkyTop)},
		{0.4, solid(config.SkyMiddle)},
		{1, solid(config.SkyBottom)},
	}
	trailGradient = gradient{
		{0, withAlpha(config.TrailRed, 0)},
		{0.6, withAlpha(config.TrailRed, 0.35)},
		{1, withAlpha(config.TrailRed, 0.8)},
	}
)

// renderer paints a scene. It only reads the scene; all state it keeps is
// scratch space for building triangles.
type renderer struct {
	c *canvas
}

func newRenderer() *renderer {
	return &renderer{c: newCanvas()}
}

// draw paints the scene back to front in logical coordinates, scaled to
// device pixels by the surface transform.
func (r *renderer) draw(dst triangleSink, s *chase.Scene, surf *Surface) {
	r.c.begin(dst, surf.Transform)

	r.drawBackground(s, surf)
	r.drawAlienAura(s)
	r.drawEnergyTrails(s)
	r.drawAlien(s)
	r.drawHumans(s)
	r.drawTears(s)
}

func (r *renderer) drawBackground(s *chase.Scene, surf *Surface) {
	r.c.fillVertical(surf.Width, surf.Height, skyGradient)

	for i := range s.Embers {
		e := &s.Embers[i]
		alpha := 0.18 + math.Sin(e.Y*0.02)*0.12
		cr, cg, cb := hslToRgb(e.Hue, 0.7, 0.65)
		col := rgba{float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(alpha)}
		r.c.fillCircle(e.X, e.Y, e.Radius, col)
	}
}

func (r *renderer) drawAlienAura(s *chase.Scene) {
	a := &s.Alien
	r.c.fillRadial(a.X, a.Y, 5, 70, withAlpha(config.AuraGreen, 0.65), withAlpha(config.AuraGreen, 0))
}

func (r *renderer) drawEnergyTrails(s *chase.Scene) {
	for i := range s.Humans {
		h := &s.Humans[i]
		start := h.X - 60
		fade := func(x, _ float64) rgba {
			return trailGradient.at((x - start) / 60)
		}
		r.c.fillEllipse(h.X-30, h.Y+8, 60, 28+math.Sin(h.Pulse)*4, 0.1, fade)
	}
}

func (r *renderer) drawAlien(s *chase.Scene) {
	a := &s.Alien
	c := r.c

	bodyBob := math.Sin(a.Pulse) * 4
	headTilt := math.Sin(a.Pulse*2) * 0.2

	c.save()
	c.translate(a.X, a.Y+bodyBob)

	// body
	c.fillEllipse(0, 0, 28, 38, 0, flat(solid(config.AlienBody)))

	// head
	c.save()
	c.rotate(headTilt)
	c.translate(0, -42)
	c.fillEllipse(0, 0, 22, 26, 0, flat(solid(config.AlienHead)))

	ink := solid(config.Ink)
	c.fillEllipse(-8, -2, 6, 12, 0.1, flat(ink))
	c.fillEllipse(8, -2, 6, 12, -0.1, flat(ink))

	gloss := withAlpha(config.TearBlue, 0.5)
	c.fillCircle(-9, -4, 3, gloss)
	c.fillCircle(9, -4, 3, gloss)

	c.moveTo(-6, 8)
	c.quadTo(0, 14, 6, 8)
	c.stroke(2, ink)
	c.restore()

	// limbs
	limb := solid(config.AlienLimb)
	legSwing := math.Sin(a.Wobble) * 14
	armSwing := math.Cos(a.Wobble*1.2) * 16

	c.moveTo(-12, 18)
	c.quadTo(-22-armSwing, 28, -22-armSwing, 34)
	c.stroke(5, limb)

	c.moveTo(12, 18)
	c.quadTo(26+armSwing, 30, 28+armSwing, 38)
	c.stroke(5, limb)

	c.moveTo(-8, 28)
	c.quadTo(-20-legSwing, 58, -16-legSwing*0.4, 74)
	c.stroke(5, limb)

	c.moveTo(8, 28)
	c.quadTo(20+legSwing, 58, 16+legSwing*0.4, 74)
	c.stroke(5, limb)

	c.restore()
}

// humanColor cycles the palette for any number of pursuers.
func humanColor(index int) rgba {
	return solid(config.HumanColors[index%len(config.HumanColors)])
}

func (r *renderer) drawHumans(s *chase.Scene) {
	c := r.c
	ink := solid(config.Ink)
	skin := solid(config.HumanSkin)

	for i := range s.Humans {
		h := &s.Humans[i]
		body := humanColor(i)

		c.save()
		c.translate(h.X, h.Y+math.Sin(h.Wobble)*4)

		c.pts = roundedRectPoints(c.pts[:0], -16, -26, 32, 50, 10, 6)
		c.fillConvex(c.pts, flat(body))

		c.fillCircle(0, -40, 14, skin)
		c.fillCircle(-5, -42, 2.8, ink)
		c.fillCircle(5, -42, 2.8, ink)

		c.moveTo(-8, -32)
		c.quadTo(0, -26, 8, -32)
		c.stroke(2, ink)

		stride := math.Sin(h.Wobble*1.8) * 12
		limbs := [4][4]float64{
			{-14, 6, -30 - stride, 28},
			{14, 6, 30 + stride, 28},
			{-10, 18, -14 - stride, 52},
			{10, 18, 14 + stride, 52},
		}
		for _, l := range limbs {
			c.moveTo(l[0], l[1])
			c.lineTo(l[2], l[3])
			c.stroke(6, body)
		}

		c.restore()
	}
}

func (r *renderer) drawTears(s *chase.Scene) {
	for i := range s.Tears {
		t := &s.Tears[i]
		r.c.fillEllipse(t.X, t.Y, 3, 6, 0.3, flat(withAlpha(config.TearBlue, t.Alpha)))
	}
}
