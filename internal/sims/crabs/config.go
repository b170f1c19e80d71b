package crabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"crabs/internal/core"
	"crabs/internal/render"

	"gopkg.in/yaml.v3"
)

// Config controls the crabs world. Colors are "#rrggbbaa" strings so the
// YAML form stays readable. A zero Seed is a valid seed; the command line
// replaces it with a clock-derived one.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Seed    int64   `yaml:"seed"`
	Seeder  string  `yaml:"seeder"`
	Density float64 `yaml:"density"`
	Edges   string  `yaml:"edges"`

	CrabColor  string `yaml:"crab_color"`
	ClearColor string `yaml:"clear_color"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Seed:       0,
		Seeder:     "random",
		Density:    0.5,
		Edges:      core.EdgeEmpty.String(),
		CrabColor:  render.Hex(color.RGBA{R: 190, G: 25, B: 49, A: 255}),
		ClearColor: render.Hex(color.RGBA{R: 54, G: 139, B: 187, A: 255}),
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("crabs: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Palette resolves the configured colors.
func (c Config) Palette() (render.Palette, error) {
	live, err := render.ParseHex(c.CrabColor)
	if err != nil {
		return render.Palette{}, err
	}
	dead, err := render.ParseHex(c.ClearColor)
	if err != nil {
		return render.Palette{}, err
	}
	return render.Palette{Live: live, Dead: dead}, nil
}

// Validate checks every field that NewWorld depends on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("crabs: %dx%d: %w", c.Width, c.Height, core.ErrEmptyGrid)
	}
	if _, ok := core.Seeders()[c.Seeder]; !ok {
		return fmt.Errorf("crabs: unknown seeder %q", c.Seeder)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("crabs: density %v outside [0,1]", c.Density)
	}
	if _, err := core.ParseEdgePolicy(c.Edges); err != nil {
		return err
	}
	_, err := c.Palette()
	return err
}

// Apply overrides fields from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are reported.
func (c *Config) Apply(kv map[string]string) error {
	for k, v := range kv {
		var err error
		switch k {
		case "w", "width":
			c.Width, err = strconv.Atoi(v)
		case "h", "height":
			c.Height, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "seeder":
			c.Seeder = v
		case "density":
			c.Density, err = strconv.ParseFloat(v, 64)
		case "edges":
			c.Edges = v
		case "crab_color":
			c.CrabColor = v
		case "clear_color":
			c.ClearColor = v
		default:
			return fmt.Errorf("crabs: unknown parameter %q", k)
		}
		if err != nil {
			return fmt.Errorf("crabs: parameter %s=%q: %w", k, v, err)
		}
	}
	return nil
}
