package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type drawCall struct {
	vs []ebiten.Vertex
	is []uint16
}

// recorder captures triangle batches instead of rasterizing them.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawTriangles(vs []ebiten.Vertex, is []uint16, _ *ebiten.Image, _ *ebiten.DrawTrianglesOptions) {
	r.calls = append(r.calls, drawCall{
		vs: append([]ebiten.Vertex(nil), vs...),
		is: append([]uint16(nil), is...),
	})
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func scaled(s float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(s, s)
	return m
}

func TestGradientAt(t *testing.T) {
	tests := []struct {
		t, alpha float64
	}{
		{-1, 0},
		{0, 0},
		{0.3, 0.175},
		{0.6, 0.35},
		{0.8, 0.575},
		{1, 0.8},
		{2, 0.8},
	}
	for _, tt := range tests {
		got := trailGradient.at(tt.t)
		if !near(float64(got.A), tt.alpha, 1e-5) {
			t.Errorf("trailGradient.at(%v).A = %v, want %v", tt.t, got.A, tt.alpha)
		}
		if !near(float64(got.R), 248.0/255, 1e-5) {
			t.Errorf("trailGradient.at(%v).R = %v, want constant red", tt.t, got.R)
		}
	}
	if c := (gradient{}).at(0.5); c != (rgba{}) {
		t.Errorf("empty gradient = %+v, want zero", c)
	}
}

func TestCanvasTransformStack(t *testing.T) {
	c := newCanvas()
	c.begin(nil, scaled(2))

	c.save()
	c.translate(10, 20)
	c.rotate(math.Pi / 2)
	c.vertex(1, 0, rgba{})
	c.restore()
	c.vertex(3, 4, rgba{})

	got := c.vs[0]
	if !near(float64(got.DstX), 20, 1e-4) || !near(float64(got.DstY), 42, 1e-4) {
		t.Errorf("rotated vertex at (%v, %v), want (20, 42)", got.DstX, got.DstY)
	}
	got = c.vs[1]
	if got.DstX != 6 || got.DstY != 8 {
		t.Errorf("restored vertex at (%v, %v), want (6, 8)", got.DstX, got.DstY)
	}
	if got.SrcX != 1 || got.SrcY != 1 {
		t.Errorf("vertex samples (%v, %v), want the white texel (1, 1)", got.SrcX, got.SrcY)
	}
}

func TestCanvasRestoreWithoutSave(t *testing.T) {
	c := newCanvas()
	c.begin(nil, scaled(3))
	c.restore()
	if s := c.lineScale(); !near(s, 3, 1e-12) {
		t.Errorf("lineScale after unbalanced restore = %v, want 3", s)
	}
}

func TestCanvasLineScale(t *testing.T) {
	c := newCanvas()
	c.begin(nil, scaled(2))
	c.rotate(0.7)
	c.translate(100, -50)
	if s := c.lineScale(); !near(s, 2, 1e-12) {
		t.Errorf("lineScale = %v, want 2", s)
	}
}

func TestFillConvex(t *testing.T) {
	rec := &recorder{}
	c := newCanvas()
	c.begin(rec, ebiten.GeoM{})

	red := rgba{1, 0, 0, 1}
	c.fillEllipse(50, 50, 10, 5, 0, flat(red))

	if len(rec.calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(rec.calls))
	}
	call := rec.calls[0]
	if len(call.vs) != ellipseSegments+1 {
		t.Errorf("vertices = %d, want %d", len(call.vs), ellipseSegments+1)
	}
	if len(call.is) != 3*ellipseSegments {
		t.Errorf("indices = %d, want %d", len(call.is), 3*ellipseSegments)
	}
	if call.vs[0].DstX != 50 || call.vs[0].DstY != 50 {
		t.Errorf("fan center at (%v, %v), want (50, 50)", call.vs[0].DstX, call.vs[0].DstY)
	}
	for i, v := range call.vs {
		if v.ColorR != 1 || v.ColorA != 1 || v.ColorG != 0 {
			t.Fatalf("vertex %d color = (%v, %v, %v, %v), want red", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
	if len(c.vs) != 0 || len(c.is) != 0 {
		t.Error("scratch buffers not cleared after flush")
	}
}

func TestFillConvexDegenerate(t *testing.T) {
	rec := &recorder{}
	c := newCanvas()
	c.begin(rec, ebiten.GeoM{})
	c.fillConvex([]vec{{0, 0}, {1, 1}}, flat(rgba{}))
	if len(rec.calls) != 0 {
		t.Errorf("draw calls = %d, want 0 for a two-point polygon", len(rec.calls))
	}
}

func TestFillRadial(t *testing.T) {
	rec := &recorder{}
	c := newCanvas()
	c.begin(rec, ebiten.GeoM{})

	inner := rgba{0, 1, 0, 0.65}
	outer := rgba{0, 1, 0, 0}
	c.fillRadial(100, 100, 5, 70, inner, outer)

	call := rec.calls[0]
	if len(call.vs) != 1+2*ellipseSegments {
		t.Fatalf("vertices = %d, want %d", len(call.vs), 1+2*ellipseSegments)
	}
	if len(call.is) != 9*ellipseSegments {
		t.Errorf("indices = %d, want %d", len(call.is), 9*ellipseSegments)
	}
	for i := 1; i < len(call.vs); i += 2 {
		in, out := call.vs[i], call.vs[i+1]
		if in.ColorA != inner.A || out.ColorA != outer.A {
			t.Fatalf("ring %d alphas = (%v, %v), want (%v, %v)", i/2, in.ColorA, out.ColorA, inner.A, outer.A)
		}
		r := math.Hypot(float64(out.DstX)-100, float64(out.DstY)-100)
		if !near(r, 70, 1e-3) {
			t.Fatalf("outer vertex %d at radius %v, want 70", i/2, r)
		}
	}
	for _, idx := range call.is {
		if int(idx) >= len(call.vs) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestFillVertical(t *testing.T) {
	rec := &recorder{}
	c := newCanvas()
	c.begin(rec, scaled(2))
	c.fillVertical(100, 50, skyGradient)

	call := rec.calls[0]
	if len(call.vs) != 6 || len(call.is) != 12 {
		t.Fatalf("vertices/indices = %d/%d, want 6/12", len(call.vs), len(call.is))
	}
	last := call.vs[len(call.vs)-1]
	if last.DstX != 200 || last.DstY != 100 {
		t.Errorf("bottom-right at (%v, %v), want (200, 100)", last.DstX, last.DstY)
	}
	if call.vs[2].DstY != 40 {
		t.Errorf("middle stop at y=%v, want 40", call.vs[2].DstY)
	}
}

func TestStroke(t *testing.T) {
	rec := &recorder{}
	c := newCanvas()
	c.begin(rec, scaled(2))

	col := rgba{0.2, 0.4, 0.6, 1}
	c.moveTo(0, 0)
	c.quadTo(10, 10, 20, 0)
	c.stroke(3, col)

	if len(rec.calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(rec.calls))
	}
	call := rec.calls[0]
	if len(call.vs) == 0 || len(call.is) == 0 {
		t.Fatal("stroke produced no geometry")
	}
	for i, v := range call.vs {
		if v.ColorR != col.R || v.ColorG != col.G || v.ColorB != col.B || v.ColorA != col.A {
			t.Fatalf("vertex %d color mismatch", i)
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Fatalf("vertex %d samples (%v, %v), want (1, 1)", i, v.SrcX, v.SrcY)
		}
		if v.DstX < -10 || v.DstX > 50 || v.DstY < -10 || v.DstY > 30 {
			t.Fatalf("vertex %d at (%v, %v), outside the scaled curve", i, v.DstX, v.DstY)
		}
	}

	// the path is consumed by stroke
	c.stroke(3, col)
	if len(rec.calls) != 1 {
		t.Errorf("stroking an empty path drew %d extra batches", len(rec.calls)-1)
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(nil, 10, 20, 6, 3, math.Pi/2, 8)
	if len(pts) != 8 {
		t.Fatalf("len = %d, want 8", len(pts))
	}
	// rotated a quarter turn the major axis runs vertically
	if !near(pts[0].X, 10, 1e-9) || !near(pts[0].Y, 26, 1e-9) {
		t.Errorf("first point = %+v, want (10, 26)", pts[0])
	}
}

func TestRoundedRectPoints(t *testing.T) {
	pts := roundedRectPoints(nil, -16, -26, 32, 50, 10, 6)
	if len(pts) != 4*7 {
		t.Fatalf("len = %d, want 28", len(pts))
	}
	if pts[0] != (vec{-16, -16}) {
		t.Errorf("first point = %+v, want (-16, -16)", pts[0])
	}
	if pts[6] != (vec{-6, -26}) {
		t.Errorf("end of first corner = %+v, want (-6, -26)", pts[6])
	}
	for i, p := range pts {
		if p.X < -16 || p.X > 16 || p.Y < -26 || p.Y > 24 {
			t.Errorf("point %d = %+v outside the rectangle", i, p)
		}
	}
}

func TestQuadPoint(t *testing.T) {
	mid := quadPoint(vec{0, 0}, vec{1, 2}, vec{2, 0}, 0.5)
	if mid != (vec{1, 1}) {
		t.Errorf("quadPoint midpoint = %+v, want (1, 1)", mid)
	}
}
