package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Segments used to flatten a full ellipse.
const ellipseSegments = 40

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// triangleSink is anything triangles can be drawn onto. *ebiten.Image
// satisfies it.
type triangleSink interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// rgba is a straight-alpha color with components in [0, 1].
type rgba struct {
	R, G, B, A float32
}

func solid(c color.RGBA) rgba {
	return rgba{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func withAlpha(c color.NRGBA, alpha float64) rgba {
	return rgba{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(clamp01(alpha))}
}

type vec struct{ X, Y float64 }

type colorStop struct {
	At    float64
	Color rgba
}

// gradient is a piecewise-linear color ramp over [0, 1]. Positions outside
// the first and last stop take the end colors.
type gradient []colorStop

func (g gradient) at(t float64) rgba {
	if len(g) == 0 {
		return rgba{}
	}
	if t <= g[0].At {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		lo, hi := g[i-1], g[i]
		if t > hi.At {
			continue
		}
		span := float32(hi.At - lo.At)
		if span <= 0 {
			return hi.Color
		}
		local := float32(t - lo.At)
		return rgba{
			R: ease.Linear(local, lo.Color.R, hi.Color.R-lo.Color.R, span),
			G: ease.Linear(local, lo.Color.G, hi.Color.G-lo.Color.G, span),
			B: ease.Linear(local, lo.Color.B, hi.Color.B-lo.Color.B, span),
			A: ease.Linear(local, lo.Color.A, hi.Color.A-lo.Color.A, span),
		}
	}
	return g[len(g)-1].Color
}

// paint returns the color for a point in the coordinates of the shape call.
type paint func(x, y float64) rgba

func flat(c rgba) paint {
	return func(float64, float64) rgba { return c }
}

// canvas is an immediate-mode 2D drawing context with a save/restore
// transform stack. Each fill or stroke is submitted as its own batch of
// triangles against a white texel, colored per vertex.
type canvas struct {
	dst   triangleSink
	geo   ebiten.GeoM
	stack []ebiten.GeoM

	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
	pts  []vec
	op   ebiten.DrawTrianglesOptions
}

func newCanvas() *canvas {
	c := &canvas{}
	c.op.AntiAlias = true
	return c
}

// begin targets dst with base as the outermost transform.
func (c *canvas) begin(dst triangleSink, base ebiten.GeoM) {
	c.dst = dst
	c.geo = base
	c.stack = c.stack[:0]
}

func (c *canvas) save() {
	c.stack = append(c.stack, c.geo)
}

func (c *canvas) restore() {
	if n := len(c.stack); n > 0 {
		c.geo = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// translate and rotate apply in local space: the new operation acts
// on shape coordinates before the existing transform.
func (c *canvas) translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	c.prepend(m)
}

func (c *canvas) rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	c.prepend(m)
}

func (c *canvas) prepend(m ebiten.GeoM) {
	m.Concat(c.geo)
	c.geo = m
}

// lineScale is the factor by which the current transform stretches lengths.
func (c *canvas) lineScale() float64 {
	a, b := c.geo.Element(0, 0), c.geo.Element(0, 1)
	d, e := c.geo.Element(1, 0), c.geo.Element(1, 1)
	return math.Sqrt(math.Abs(a*e - b*d))
}

func (c *canvas) vertex(x, y float64, col rgba) uint16 {
	dx, dy := c.geo.Apply(x, y)
	c.vs = append(c.vs, ebiten.Vertex{
		DstX:   float32(dx),
		DstY:   float32(dy),
		SrcX:   1,
		SrcY:   1,
		ColorR: col.R,
		ColorG: col.G,
		ColorB: col.B,
		ColorA: col.A,
	})
	return uint16(len(c.vs) - 1)
}

func (c *canvas) triangle(a, b, d uint16) {
	c.is = append(c.is, a, b, d)
}

func (c *canvas) flush() {
	if len(c.is) > 0 && c.dst != nil {
		c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &c.op)
	}
	c.vs = c.vs[:0]
	c.is = c.is[:0]
}

// fillConvex fans a convex polygon out from its centroid.
func (c *canvas) fillConvex(pts []vec, p paint) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, pt := range pts {
		cx += pt.X
		cy += pt.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	center := c.vertex(cx, cy, p(cx, cy))
	first := center + 1
	for _, pt := range pts {
		c.vertex(pt.X, pt.Y, p(pt.X, pt.Y))
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		c.triangle(center, first+i, first+(i+1)%n)
	}
	c.flush()
}

func (c *canvas) fillEllipse(cx, cy, rx, ry, rotation float64, p paint) {
	c.pts = ellipsePoints(c.pts[:0], cx, cy, rx, ry, rotation, ellipseSegments)
	c.fillConvex(c.pts, p)
}

func (c *canvas) fillCircle(cx, cy, r float64, col rgba) {
	c.fillEllipse(cx, cy, r, r, 0, flat(col))
}

// fillRadial paints a disc whose color runs from inner at r0 to outer at
// r1, solid inside r0.
func (c *canvas) fillRadial(cx, cy, r0, r1 float64, inner, outer rgba) {
	center := c.vertex(cx, cy, inner)
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		cos, sin := math.Cos(theta), math.Sin(theta)
		c.vertex(cx+cos*r0, cy+sin*r0, inner)
		c.vertex(cx+cos*r1, cy+sin*r1, outer)
	}
	for i := 0; i < ellipseSegments; i++ {
		j := (i + 1) % ellipseSegments
		in0, out0 := center+uint16(1+2*i), center+uint16(2+2*i)
		in1, out1 := center+uint16(1+2*j), center+uint16(2+2*j)
		c.triangle(center, in0, in1)
		c.triangle(in0, out0, out1)
		c.triangle(in0, out1, in1)
	}
	c.flush()
}

// fillVertical paints the rectangle (0,0)-(w,h) with a top-to-bottom
// gradient, one band per pair of stops.
func (c *canvas) fillVertical(w, h float64, g gradient) {
	start := uint16(len(c.vs))
	for i, stop := range g {
		y := stop.At * h
		c.vertex(0, y, stop.Color)
		c.vertex(w, y, stop.Color)
		if i == 0 {
			continue
		}
		base := start + uint16(2*(i-1))
		c.triangle(base, base+1, base+2)
		c.triangle(base+1, base+3, base+2)
	}
	c.flush()
}

func (c *canvas) moveTo(x, y float64) {
	dx, dy := c.geo.Apply(x, y)
	c.path.MoveTo(float32(dx), float32(dy))
}

func (c *canvas) lineTo(x, y float64) {
	dx, dy := c.geo.Apply(x, y)
	c.path.LineTo(float32(dx), float32(dy))
}

// quadTo maps the control point through the transform as well; quadratic
// curves are preserved by affine maps.
func (c *canvas) quadTo(cpx, cpy, x, y float64) {
	cx, cy := c.geo.Apply(cpx, cpy)
	dx, dy := c.geo.Apply(x, y)
	c.path.QuadTo(float32(cx), float32(cy), float32(dx), float32(dy))
}

// stroke outlines the current path with round caps and clears it.
func (c *canvas) stroke(width float64, col rgba) {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width * c.lineScale()),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = col.R
		c.vs[i].ColorG = col.G
		c.vs[i].ColorB = col.B
		c.vs[i].ColorA = col.A
	}
	c.path = vector.Path{}
	c.flush()
}

func ellipsePoints(dst []vec, cx, cy, rx, ry, rotation float64, n int) []vec {
	cosR, sinR := math.Cos(rotation), math.Sin(rotation)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		dst = append(dst, vec{
			X: cx + ex*cosR - ey*sinR,
			Y: cy + ex*sinR + ey*cosR,
		})
	}
	return dst
}

// roundedRectPoints outlines a rectangle whose corners are quadratic curves
// of the given radius, clockwise from the top-left corner.
func roundedRectPoints(dst []vec, x, y, w, h, r float64, perCorner int) []vec {
	corner := func(p0, ctrl, p1 vec) {
		for i := 0; i <= perCorner; i++ {
			dst = append(dst, quadPoint(p0, ctrl, p1, float64(i)/float64(perCorner)))
		}
	}
	right, bottom := x+w, y+h
	corner(vec{x, y + r}, vec{x, y}, vec{x + r, y})
	corner(vec{right - r, y}, vec{right, y}, vec{right, y + r})
	corner(vec{right, bottom - r}, vec{right, bottom}, vec{right - r, bottom})
	corner(vec{x + r, bottom}, vec{x, bottom}, vec{x, bottom - r})
	return dst
}

func quadPoint(p0, ctrl, p1 vec, t float64) vec {
	u := 1 - t
	return vec{
		X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
	}
}
