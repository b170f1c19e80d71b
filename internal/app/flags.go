package app

import "github.com/spf13/pflag"

// Options represents the window host's command-line parameters.
type Options struct {
	Title string
	Scale int
	TPS   int
	HUD   bool
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Title: "Crabs", Scale: 1, TPS: 60}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Title, "title", o.Title, "window title")
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generations per second")
	fs.BoolVar(&o.HUD, "hud", o.HUD, "show generation and population overlay")
}
