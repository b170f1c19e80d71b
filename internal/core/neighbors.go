package core

import "fmt"

// EdgePolicy selects how the neighborhood of a border cell is enumerated.
type EdgePolicy uint8

const (
	// EdgeEmpty gives every border cell an empty neighborhood, so border
	// cells never survive or come alive.
	EdgeEmpty EdgePolicy = iota
	// EdgeDead enumerates all eight neighbors and reads positions outside
	// the board as dead.
	EdgeDead
	// EdgeWrap joins opposite edges (toroidal topology).
	EdgeWrap
)

var edgeNames = [...]string{EdgeEmpty: "empty", EdgeDead: "dead", EdgeWrap: "wrap"}

func (p EdgePolicy) String() string {
	if int(p) < len(edgeNames) {
		return edgeNames[p]
	}
	return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
}

// ParseEdgePolicy maps a policy name back to its value.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	for i, name := range edgeNames {
		if name == s {
			return EdgePolicy(i), nil
		}
	}
	return EdgeEmpty, fmt.Errorf("core: unknown edge policy %q", s)
}

// neighborOffsets lists the Moore neighborhood:
//
//	0 1 2
//	3 _ 4
//	5 6 7
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighborhood holds up to eight neighbor states without allocating.
type Neighborhood struct {
	states [8]bool
	n      int
}

// Len returns the number of enumerated neighbors, 0 or 8.
func (nb Neighborhood) Len() int { return nb.n }

// At returns the i-th neighbor in neighborOffsets order.
func (nb Neighborhood) At(i int) bool { return nb.states[:nb.n][i] }

// Alive counts the live neighbors.
func (nb Neighborhood) Alive() int {
	count := 0
	for _, s := range nb.states[:nb.n] {
		if s {
			count++
		}
	}
	return count
}

// NeighborStates returns the Moore neighborhood of (x, y) read from the
// current generation, ordered top-left to bottom-right.
func (g *Grid) NeighborStates(x, y int) Neighborhood {
	g.Index(x, y)
	var nb Neighborhood
	border := x == 0 || y == 0 || x == g.w-1 || y == g.h-1
	if border && g.edges == EdgeEmpty {
		return nb
	}
	nb.n = len(neighborOffsets)
	for i, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if border {
			switch g.edges {
			case EdgeWrap:
				nx = (nx + g.w) % g.w
				ny = (ny + g.h) % g.h
			case EdgeDead:
				if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h {
					continue
				}
			}
		}
		nb.states[i] = g.cur[ny*g.w+nx]
	}
	return nb
}
