package crabs

import (
	"bytes"
	"image/color"

	"crabs/internal/core"
	"crabs/internal/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var testPalette = render.Palette{
	Live: color.RGBA{R: 190, G: 25, B: 49, A: 255},
	Dead: color.RGBA{R: 54, G: 139, B: 187, A: 255},
}

func liveSet(g *core.Grid) map[[2]int]bool {
	live := map[[2]int]bool{}
	for i, c := range g.Cells() {
		if c {
			x, y := g.Coords(i)
			live[[2]int{x, y}] = true
		}
	}
	return live
}

func seedCells(cells ...[2]int) core.Initializer {
	live := map[[2]int]bool{}
	for _, c := range cells {
		live[c] = true
	}
	return func(x, y int) bool { return live[[2]int{x, y}] }
}

func pixel(frame []byte, g *core.Grid, x, y int) color.RGBA {
	i := g.Index(x, y) * 4
	return color.RGBA{R: frame[i], G: frame[i+1], B: frame[i+2], A: frame[i+3]}
}

var _ = Describe("Simulator", func() {
	var (
		sim   *Simulator
		frame []byte
	)

	BeforeEach(func() {
		sim = New(testPalette)
		frame = make([]byte, 5*5*4)
	})

	It("kills an isolated cell", func() {
		grid := core.MustNewGrid(5, 5, seedCells([2]int{2, 2}))
		sim.AdvanceAndRender(grid, frame)

		Expect(grid.Population()).To(BeZero())
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				Expect(pixel(frame, grid, x, y)).To(Equal(testPalette.Dead))
			}
		}
	})

	It("flips a blinker and back", func() {
		horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
		vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
		grid := core.MustNewGrid(5, 5, seedCells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))

		sim.AdvanceAndRender(grid, frame)
		Expect(liveSet(grid)).To(Equal(vertical))
		for pos := range vertical {
			Expect(pixel(frame, grid, pos[0], pos[1])).To(Equal(testPalette.Live))
		}
		Expect(pixel(frame, grid, 1, 2)).To(Equal(testPalette.Dead))

		sim.AdvanceAndRender(grid, frame)
		Expect(liveSet(grid)).To(Equal(horizontal))
	})

	It("reads only the previous generation during a pass", func() {
		// A 2x2 block is stable only if every cell sees the settled block.
		block := seedCells([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
		grid := core.MustNewGrid(4, 4, block)
		frame = make([]byte, 4*4*4)

		sim.AdvanceAndRender(grid, frame)
		Expect(grid.Population()).To(Equal(4))
	})

	It("kills every border cell under the empty edge policy", func() {
		grid := core.MustNewGrid(5, 5, func(int, int) bool { return true })
		sim.AdvanceAndRender(grid, frame)

		for i, alive := range grid.Cells() {
			x, y := grid.Coords(i)
			if x == 0 || y == 0 || x == 4 || y == 4 {
				Expect(alive).To(BeFalse(), "border cell (%d,%d)", x, y)
			}
		}
	})

	It("paints colors from the next state only", func() {
		grid := core.MustNewGrid(5, 5, seedCells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
		dirty := bytes.Repeat([]byte{7}, len(frame))
		copy(frame, dirty)

		sim.AdvanceAndRender(grid, frame)
		for i, alive := range grid.Cells() {
			x, y := grid.Coords(i)
			want := testPalette.Dead
			if alive {
				want = testPalette.Live
			}
			Expect(pixel(frame, grid, x, y)).To(Equal(want))
		}
	})

	It("is deterministic for identical generations", func() {
		rng := func(x, y int) bool { return (x*7+y*13)%5 < 2 }
		a := core.MustNewGrid(5, 5, rng)
		b := core.MustNewGrid(5, 5, rng)
		frameB := make([]byte, len(frame))

		for i := 0; i < 4; i++ {
			sim.AdvanceAndRender(a, frame)
			sim.AdvanceAndRender(b, frameB)
			Expect(a.Cells()).To(Equal(b.Cells()))
			Expect(frame).To(Equal(frameB))
		}
	})

	DescribeTable("rejects mis-sized frame buffers",
		func(size int) {
			grid := core.MustNewGrid(5, 5, seedCells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
			before := append([]bool(nil), grid.Cells()...)

			Expect(func() { sim.AdvanceAndRender(grid, make([]byte, size)) }).
				To(PanicWith(MatchError(core.ErrFrameSize)))
			Expect(grid.Cells()).To(Equal(before))
		},
		Entry("empty", 0),
		Entry("one byte short", 5*5*4-1),
		Entry("one byte long", 5*5*4+1),
		Entry("one pixel per cell", 5*5),
	)
})
