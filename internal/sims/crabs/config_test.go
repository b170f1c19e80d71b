package crabs

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"crabs/internal/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.Live != (color.RGBA{R: 190, G: 25, B: 49, A: 255}) {
		t.Errorf("unexpected crab color %v", p.Live)
	}
	if p.Dead != (color.RGBA{R: 54, G: 139, B: 187, A: 255}) {
		t.Errorf("unexpected clear color %v", p.Dead)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"unknown seeder", func(c *Config) { c.Seeder = "soup" }},
		{"density above one", func(c *Config) { c.Density = 1.5 }},
		{"unknown edges", func(c *Config) { c.Edges = "clamp" }},
		{"bad crab color", func(c *Config) { c.CrabColor = "red" }},
		{"bad clear color", func(c *Config) { c.ClearColor = "#12345z" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Height = 0
	if err := cfg.Validate(); !errors.Is(err, core.ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Apply(map[string]string{
		"w":          "32",
		"height":     "18",
		"seed":       "7",
		"seeder":     "acorn",
		"density":    "0.25",
		"edges":      "dead",
		"crab_color": "#ffffff",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 18 || cfg.Seed != 7 {
		t.Errorf("dimensions/seed not applied: %+v", cfg)
	}
	if cfg.Seeder != "acorn" || cfg.Density != 0.25 || cfg.Edges != "dead" || cfg.CrabColor != "#ffffff" {
		t.Errorf("fields not applied: %+v", cfg)
	}

	if err := cfg.Apply(map[string]string{"rule": "B36/S23"}); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := cfg.Apply(map[string]string{"w": "wide"}); err == nil {
		t.Error("expected error for unparsable width")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crabs.yaml")
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Seed = 1234
	cfg.Edges = "wrap"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
