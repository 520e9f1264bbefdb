package game

import "github.com/hajimehoshi/ebiten/v2"

// Surface tracks the logical size of the window content and the backing
// pixel size after applying the device scale factor. Drawing code works in
// logical pixels and relies on Transform to reach device pixels.
type Surface struct {
	Width, Height float64 // logical pixels
	Scale         float64

	PixelWidth, PixelHeight int

	// Transform maps logical coordinates to backing pixels.
	Transform ebiten.GeoM
}

// Resize re-derives the backing size for a container of w×h logical pixels
// at the given device scale. A non-positive scale is treated as 1. It
// reports whether anything changed; calling it again with the same inputs
// is a no-op.
func (s *Surface) Resize(w, h int, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}
	width, height := float64(w), float64(h)
	if s.Width == width && s.Height == height && s.Scale == scale {
		return false
	}

	s.Width, s.Height, s.Scale = width, height, scale
	s.PixelWidth = int(width * scale)
	s.PixelHeight = int(height * scale)

	s.Transform.Reset()
	s.Transform.Scale(scale, scale)
	return true
}

// Empty reports whether the surface has no drawable area.
func (s *Surface) Empty() bool {
	return s.PixelWidth <= 0 || s.PixelHeight <= 0
}
