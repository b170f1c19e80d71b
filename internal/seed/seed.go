// Package seed registers the named seeding strategies used to build the
// initial generation of a grid.
package seed

import (
	"crabs/internal/core"
	pkgcore "crabs/pkg/core"
)

// Random seeds every cell independently, alive with probability density.
func Random(size core.Size, seed int64, density float64) core.Initializer {
	rng := pkgcore.NewRNG(seed)
	return func(x, y int) bool { return rng.Chance(density) }
}

// Empty leaves every cell dead.
func Empty(core.Size, int64, float64) core.Initializer {
	return func(x, y int) bool { return false }
}

// Pattern returns a seeder placing the given live offsets around the grid
// center. Offsets that fall outside the grid are dropped.
func Pattern(cells ...[2]int) core.Seeder {
	return func(size core.Size, _ int64, _ float64) core.Initializer {
		cx, cy := size.W/2, size.H/2
		live := make(map[[2]int]struct{}, len(cells))
		for _, c := range cells {
			live[[2]int{cx + c[0], cy + c[1]}] = struct{}{}
		}
		return func(x, y int) bool {
			_, ok := live[[2]int{x, y}]
			return ok
		}
	}
}

var (
	blinker = Pattern([2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0})
	glider  = Pattern([2]int{0, -1}, [2]int{1, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1})
	acorn   = Pattern([2]int{-2, -1}, [2]int{0, 0}, [2]int{-3, 1}, [2]int{-2, 1}, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})
)

func init() {
	core.Register("random", Random)
	core.Register("empty", Empty)
	core.Register("blinker", blinker)
	core.Register("glider", glider)
	core.Register("acorn", acorn)
}
