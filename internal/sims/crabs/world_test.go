package crabs

import (
	"crabs/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("World", func() {
	var cfg Config

	BeforeEach(func() {
		cfg = DefaultConfig()
		cfg.Width = 24
		cfg.Height = 16
		cfg.Seed = 99
	})

	It("refuses a zero-area grid", func() {
		cfg.Width = 0
		world, err := NewWorld(cfg)
		Expect(err).To(MatchError(core.ErrEmptyGrid))
		Expect(world).To(BeNil())
	})

	It("reseeds reproducibly", func() {
		world, err := NewWorld(cfg)
		Expect(err).NotTo(HaveOccurred())
		initial := append([]bool(nil), world.Grid().Cells()...)
		Expect(world.Population()).To(BeNumerically(">", 0))

		frame := make([]byte, world.FrameSize())
		world.Advance(frame)
		world.Advance(frame)
		Expect(world.Generation()).To(Equal(2))

		world.Reset(99)
		Expect(world.Generation()).To(BeZero())
		Expect(world.Grid().Cells()).To(Equal(initial))

		world.Reset(100)
		Expect(world.Grid().Cells()).NotTo(Equal(initial))
		Expect(world.Config().Seed).To(Equal(int64(100)))
	})

	It("applies the configured edge policy", func() {
		cfg.Edges = "wrap"
		world, err := NewWorld(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(world.Grid().Edges()).To(Equal(core.EdgeWrap))
	})

	It("places patterns around the center", func() {
		cfg.Seeder = "blinker"
		world, err := NewWorld(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(world.Population()).To(Equal(3))
		Expect(world.Grid().Get(12, 8)).To(BeTrue())

		frame := make([]byte, world.FrameSize())
		world.Advance(frame)
		Expect(world.Population()).To(Equal(3))
		Expect(world.Grid().Get(12, 7)).To(BeTrue())
		Expect(world.Grid().Get(12, 9)).To(BeTrue())
	})

	It("renders without advancing", func() {
		cfg.Seeder = "glider"
		world, err := NewWorld(cfg)
		Expect(err).NotTo(HaveOccurred())

		frame := make([]byte, world.FrameSize())
		world.Render(frame)
		Expect(world.Generation()).To(BeZero())
		live := 0
		for i := 0; i < len(frame); i += 4 {
			if frame[i] == 190 && frame[i+1] == 25 && frame[i+2] == 49 {
				live++
			}
		}
		Expect(live).To(Equal(5))
	})

	It("describes its parameters", func() {
		world, err := NewWorld(cfg)
		Expect(err).NotTo(HaveOccurred())

		values := map[string]string{}
		for _, group := range world.Parameters().Groups {
			for _, p := range group.Params {
				values[p.Key] = p.Value
			}
		}
		Expect(values).To(HaveKeyWithValue("width", "24"))
		Expect(values).To(HaveKeyWithValue("seed", "99"))
		Expect(values).To(HaveKeyWithValue("edges", "empty"))
		Expect(values).To(HaveKeyWithValue("seeder", "random"))
	})
})
