package core

// Grid stores the live/dead state of a fixed w*h board in row-major order,
// together with the scratch buffer the next generation is written into.
type Grid struct {
	w, h  int
	cur   []bool
	nxt   []bool
	edges EdgePolicy
}

// NewGrid allocates a grid with the given dimensions and fills it using
// initial. A nil initial leaves every cell dead.
func NewGrid(w, h int, initial Initializer) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{w: w, h: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}
	g.Fill(initial)
	return g, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions.
func MustNewGrid(w, h int, initial Initializer) *Grid {
	g, err := NewGrid(w, h, initial)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cur) }

// Edges returns the active edge policy.
func (g *Grid) Edges() EdgePolicy { return g.edges }

// SetEdges changes how neighborhoods of border cells are enumerated.
func (g *Grid) SetEdges(p EdgePolicy) { g.edges = p }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		panic(&BoundsError{X: x, Y: y, Size: g.Size()})
	}
	return y*g.w + x
}

// Coords is the inverse of Index.
func (g *Grid) Coords(i int) (int, int) { return i % g.w, i / g.w }

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool { return g.cur[g.Index(x, y)] }

// Set writes the state of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.cur[g.Index(x, y)] = alive }

// Cells exposes the current generation. Callers must not modify it.
func (g *Grid) Cells() []bool { return g.cur }

// Population counts the live cells of the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c {
			n++
		}
	}
	return n
}

// Fill overwrites every cell using initial; a nil initial clears the grid.
func (g *Grid) Fill(initial Initializer) {
	for i := range g.cur {
		if initial == nil {
			g.cur[i] = false
			continue
		}
		x, y := g.Coords(i)
		g.cur[i] = initial(x, y)
	}
}

// ShouldLive applies the B3/S23 rule to the cell at (x, y): a live cell
// survives with two or three live neighbors, a dead cell is born with
// exactly three.
func (g *Grid) ShouldLive(x, y int) bool {
	alive := g.NeighborStates(x, y).Alive()
	if g.Get(x, y) {
		return alive == 2 || alive == 3
	}
	return alive == 3
}

// SetNext stages the next-generation state of cell i in the scratch buffer.
// Staged values are invisible to Get and NeighborStates until Swap.
func (g *Grid) SetNext(i int, alive bool) { g.nxt[i] = alive }

// Swap promotes the scratch buffer to the current generation.
func (g *Grid) Swap() { g.cur, g.nxt = g.nxt, g.cur }
