package main

import (
	"fmt"
	"log"

	"crabs/internal/core"
	"crabs/internal/export"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

type runOptions struct {
	generations int
	tps         int
	gifPath     string
	gifDelay    int
	graph       bool
}

func newRunOptions() *runOptions {
	return &runOptions{generations: 100, gifDelay: 5, graph: true}
}

func (o *runOptions) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&o.generations, "generations", "n", o.generations, "generations to advance")
	fs.IntVar(&o.tps, "tps", o.tps, "generations per second (0 runs unthrottled)")
	fs.StringVar(&o.gifPath, "gif", o.gifPath, "write the frames to an animated gif")
	fs.IntVar(&o.gifDelay, "gif-delay", o.gifDelay, "gif frame delay in hundredths of a second")
	fs.BoolVar(&o.graph, "graph", o.graph, "plot population per generation")
}

func runHeadless(cmd *cobra.Command, opts *runOptions) error {
	if opts.generations <= 0 {
		return fmt.Errorf("--generations must be positive, got %d", opts.generations)
	}
	world, err := newWorld(cmd)
	if err != nil {
		return err
	}
	cfg := world.Config()
	frame := make([]byte, world.FrameSize())

	var rec *export.GIFRecorder
	if opts.gifPath != "" {
		palette, err := cfg.Palette()
		if err != nil {
			return err
		}
		rec = export.NewGIFRecorder(world.Size(), palette, opts.gifDelay)
		world.Render(frame)
		rec.Add(frame)
	}

	var pacer *core.FixedStep
	if opts.tps > 0 {
		pacer = core.NewFixedStep(opts.tps)
	}

	population := make([]float64, 0, opts.generations+1)
	population = append(population, float64(world.Population()))
	for i := 0; i < opts.generations; i++ {
		if pacer != nil {
			pacer.Wait()
		}
		world.Advance(frame)
		population = append(population, float64(world.Population()))
		if rec != nil {
			rec.Add(frame)
		}
	}

	out := cmd.OutOrStdout()
	if opts.graph {
		fmt.Fprintln(out, asciigraph.Plot(population,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("population per generation")))
	}
	fmt.Fprintf(out, "%s %dx%d seed=%d seeder=%s edges=%s: generation %d, population %d -> %d\n",
		world.Name(), cfg.Width, cfg.Height, cfg.Seed, cfg.Seeder, cfg.Edges,
		world.Generation(), int(population[0]), world.Population())

	if rec != nil {
		if err := rec.Save(opts.gifPath); err != nil {
			return err
		}
		log.Printf("wrote %d frames to %s", rec.Len(), opts.gifPath)
	}
	return nil
}
