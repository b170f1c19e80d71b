package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"crabs/internal/app"
	"crabs/internal/core"
	"crabs/internal/sims/crabs"
	"crabs/internal/tui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	width      int
	height     int
	seed       int64
	seeder     string
	density    float64
	edges      string
	overrides  []string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("crabs: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	windowOpts := app.NewOptions()

	rootCmd := &cobra.Command{
		Use:           "crabs",
		Short:         "crab-colored Game of Life",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, windowOpts)
		},
	}
	windowOpts.Bind(rootCmd.Flags())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&width, "width", 0, "grid width in cells")
	pf.IntVar(&height, "height", 0, "grid height in cells")
	pf.Int64Var(&seed, "seed", 0, "seed for the initial generation (0 picks one from the clock)")
	pf.StringVar(&seeder, "seeder", "", "seeding strategy ("+strings.Join(core.SeederNames(), ", ")+")")
	pf.Float64Var(&density, "density", 0, "live-cell probability for the random seeder")
	pf.StringVar(&edges, "edges", "", "edge policy (empty, dead, wrap)")
	pf.StringArrayVar(&overrides, "set", nil, "parameter override in key=value form (repeatable)")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, windowOpts)
		},
	}
	windowOpts.Bind(windowCmd.Flags())

	var tuiTPS int
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := newWorld(cmd)
			if err != nil {
				return err
			}
			return tui.Run(world, tuiTPS)
		},
	}
	tuiCmd.Flags().IntVar(&tuiTPS, "tps", 15, "generations per second")

	runOpts := newRunOptions()
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance the simulation headlessly and report population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd, runOpts)
		},
	}
	runOpts.bind(runCmd)

	var savePath string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if savePath != "" {
				return crabs.Save(savePath, cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the configuration to this file instead of stdout")

	seedersCmd := &cobra.Command{
		Use:   "seeders",
		Short: "list seeding strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.SeederNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(windowCmd, tuiCmd, runCmd, configCmd, seedersCmd)
	return rootCmd
}

func runWindow(cmd *cobra.Command, opts *app.Options) error {
	world, err := newWorld(cmd)
	if err != nil {
		return err
	}
	return app.Run(world, *opts)
}

// loadConfig layers the config file, explicitly set flags and --set
// overrides on top of the defaults, in that order.
func loadConfig(cmd *cobra.Command) (crabs.Config, error) {
	cfg := crabs.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = crabs.Load(configFile); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("seeder") {
		cfg.Seeder = seeder
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("edges") {
		cfg.Edges = edges
	}
	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		k, v, ok := strings.Cut(o, "=")
		if !ok {
			return cfg, fmt.Errorf("--set %q: want key=value", o)
		}
		kv[k] = v
	}
	if err := cfg.Apply(kv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newWorld(cmd *cobra.Command) (*crabs.World, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		log.Printf("random start: seed %d", cfg.Seed)
	}
	return crabs.NewWorld(cfg)
}
