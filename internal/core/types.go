package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Initializer decides the initial state of the cell at (x, y).
type Initializer func(x, y int) bool

// Sim defines the contract hosts drive once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Advance(frame []byte)
}

// Seeder builds an Initializer for a grid of the given size. The seed and
// density are only consulted by randomized seeders.
type Seeder func(size Size, seed int64, density float64) Initializer

var seeders = map[string]Seeder{}

// Register adds a seeding strategy under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of available seeding strategies.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames returns the registered seeder names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
