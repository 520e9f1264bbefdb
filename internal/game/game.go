package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/alien-chase/internal/chase"
	"github.com/iburimskiy/alien-chase/internal/config"
)

// ErrUnavailableSurface is recorded when there is nothing to draw onto at
// startup. The animation then stays blank instead of failing the host.
var ErrUnavailableSurface = errors.New("drawing surface unavailable")

// Game drives the chase: Layout sizes the surface, Update steps the scene,
// Draw paints it. It is meant to be handed to ebiten.RunGame.
type Game struct {
	// Optional hooks, read on mount. Zero values use the real clock,
	// a time-seeded source, the standard logger and the current monitor.
	Now         func() time.Time
	Rand        *rand.Rand
	Logger      *log.Logger
	ScaleFactor func() float64

	ctx      context.Context
	surface  Surface
	scene    *chase.Scene
	renderer *renderer

	mounted bool
	closed  bool
	err     error

	started time.Time
	last    time.Time
}

// New returns a game that stops once ctx is done or Close is called.
func New(ctx context.Context) *Game {
	return &Game{
		ctx:      ctx,
		renderer: newRenderer(),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.closed || g.err != nil {
		return g.fallbackSize()
	}

	if outsideWidth <= 0 || outsideHeight <= 0 {
		if !g.mounted {
			g.fail(fmt.Errorf("container is %dx%d: %w", outsideWidth, outsideHeight, ErrUnavailableSurface))
		}
		return g.fallbackSize()
	}

	if g.surface.Resize(outsideWidth, outsideHeight, g.scaleFactor()) && g.mounted {
		g.scene.Resize(g.surface.Width, g.surface.Height)
	}
	if !g.mounted {
		g.mount()
	}
	return g.surface.PixelWidth, g.surface.PixelHeight
}

func (g *Game) Update() error {
	if g.closed || g.ctx.Err() != nil {
		g.Close()
		return ebiten.Termination
	}
	if !g.mounted || g.err != nil {
		return nil
	}

	now := g.Now()
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now
	g.scene.Step(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.mounted || g.err != nil || g.closed {
		return
	}
	if screen == nil || screen.Bounds().Empty() {
		g.fail(fmt.Errorf("screen has no pixels: %w", ErrUnavailableSurface))
		return
	}

	g.renderer.draw(screen, g.scene, &g.surface)

	if config.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 12, 12)
	}
}

// Close stops the loop: the next Update returns ebiten.Termination and
// Layout no longer follows the window size. Safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.mounted {
		g.logger().Printf("stopped after %s, %d chase resets", formatDuration(g.Now().Sub(g.started)), g.scene.Resets)
	}
}

// Err reports why the animation is blank, if it is.
func (g *Game) Err() error { return g.err }

// Scene exposes the current animation state; nil before mount.
func (g *Game) Scene() *chase.Scene { return g.scene }

// Surface returns the current surface dimensions.
func (g *Game) Surface() Surface { return g.surface }

func (g *Game) mount() {
	if g.Now == nil {
		g.Now = time.Now
	}
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.scene = chase.NewScene(g.surface.Width, g.surface.Height, rng)
	g.started = g.Now()
	g.last = g.started
	g.mounted = true
	g.logger().Printf("mounted %gx%g at scale %g", g.surface.Width, g.surface.Height, g.surface.Scale)
}

func (g *Game) fail(err error) {
	if g.err != nil {
		return
	}
	g.err = err
	g.logger().Printf("animation disabled: %v", err)
}

func (g *Game) scaleFactor() float64 {
	if g.ScaleFactor != nil {
		return g.ScaleFactor()
	}
	return ebiten.Monitor().DeviceScaleFactor()
}

func (g *Game) fallbackSize() (int, int) {
	if g.surface.Empty() {
		return 1, 1
	}
	return g.surface.PixelWidth, g.surface.PixelHeight
}

func (g *Game) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.Default()
}
