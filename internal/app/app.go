//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"crabs/internal/render"
	"crabs/internal/sims/crabs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a crabs world to the ebiten.Game interface.
type Game struct {
	world   *crabs.World
	painter *render.GridPainter
	frame   []byte

	scale    int
	hud      bool
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided world and paints its first
// generation.
func New(world *crabs.World, opts Options) *Game {
	size := world.Size()
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		frame:   make([]byte, world.FrameSize()),
		scale:   opts.Scale,
		hud:     opts.HUD,
	}
	world.Render(g.frame)
	return g
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	log.Printf("reset: seed %d", seed)
	g.world.Reset(seed)
	g.world.Render(g.frame)
	g.tickOnce = false
}

// Update handles input and advances the world by at most one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.world.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.world.Advance(g.frame)
		g.tickOnce = false
	}
	return nil
}

// Draw presents the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.scale)
	if g.hud {
		status := fmt.Sprintf("gen %d  pop %d", g.world.Generation(), g.world.Population())
		if g.paused {
			status += "  [paused]"
		}
		text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.White)
	}
}

// Layout returns the logical screen size. The grid never resizes; a
// resized window only rescales the same logical surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(world *crabs.World, opts Options) error {
	size := world.Size()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(New(world, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
