package crabs

import (
	"strconv"

	"crabs/internal/core"
	_ "crabs/internal/seed"
)

// World bundles a grid with the simulator and configuration that built it.
// It is what hosts drive once per frame.
type World struct {
	cfg        Config
	grid       *core.Grid
	sim        *Simulator
	seeder     core.Seeder
	generation int
}

// NewWorld validates cfg and seeds the first generation.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	edges, _ := core.ParseEdgePolicy(cfg.Edges)
	palette, _ := cfg.Palette()
	grid, err := core.NewGrid(cfg.Width, cfg.Height, nil)
	if err != nil {
		return nil, err
	}
	grid.SetEdges(edges)
	w := &World{
		cfg:    cfg,
		grid:   grid,
		sim:    New(palette),
		seeder: core.Seeders()[cfg.Seeder],
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "crabs" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Config returns the configuration the world was built from, with Seed
// reflecting the most recent Reset.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the underlying grid.
func (w *World) Grid() *core.Grid { return w.grid }

// Generation returns the number of advances since the last Reset.
func (w *World) Generation() int { return w.generation }

// Population counts live cells in the current generation.
func (w *World) Population() int { return w.grid.Population() }

// Reset reseeds the grid with the configured seeder.
func (w *World) Reset(seed int64) {
	w.cfg.Seed = seed
	w.grid.Fill(w.seeder(w.grid.Size(), seed, w.cfg.Density))
	w.generation = 0
}

// Advance moves the world forward one generation and paints it into frame.
func (w *World) Advance(frame []byte) {
	w.sim.AdvanceAndRender(w.grid, frame)
	w.generation++
}

// Render paints the current generation into frame without advancing.
func (w *World) Render(frame []byte) { w.sim.Render(w.grid, frame) }

// FrameSize returns the frame buffer length Advance expects.
func (w *World) FrameSize() int { return w.grid.Len() * 4 }

// Parameters describes the world for hosts.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", c.Width),
				intParam("height", "Height", c.Height),
				stringParam("edges", "Edges", w.grid.Edges().String()),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				stringParam("seeder", "Seeder", c.Seeder),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.Density, 'f', -1, 64)},
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				stringParam("crab_color", "Crab", c.CrabColor),
				stringParam("clear_color", "Clear", c.ClearColor),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

var (
	_ core.Sim               = (*World)(nil)
	_ core.ParameterProvider = (*World)(nil)
)
