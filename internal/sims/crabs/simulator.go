// Package crabs advances the crabs automaton one generation at a time and
// paints each generation into a caller-owned RGBA frame buffer.
package crabs

import (
	"crabs/internal/core"
	"crabs/internal/render"
)

// Simulator advances a grid and renders the result with a fixed palette.
type Simulator struct {
	palette render.Palette
}

// New returns a Simulator painting live cells with p.Live and dead cells
// with p.Dead.
func New(p render.Palette) *Simulator {
	return &Simulator{palette: p}
}

// AdvanceAndRender computes the next generation of g into its scratch
// buffer, paints every cell's new state into frame, then swaps the
// buffers. frame must hold exactly four bytes per cell; any other length
// panics before g is touched.
func (s *Simulator) AdvanceAndRender(g *core.Grid, frame []byte) {
	core.CheckFrame(g.Size(), frame)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		alive := g.ShouldLive(x, y)
		g.SetNext(i, alive)
		s.palette.Put(frame, i, alive)
	}
	g.Swap()
}

// Render paints the current generation of g without advancing it.
func (s *Simulator) Render(g *core.Grid, frame []byte) {
	core.CheckFrame(g.Size(), frame)
	s.palette.Fill(frame, g.Cells())
}
