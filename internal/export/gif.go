package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"crabs/internal/core"
	"crabs/internal/render"
)

// ErrNoFrames is returned when encoding a recording with no frames.
var ErrNoFrames = errors.New("export: no frames recorded")

// GIFRecorder collects RGBA frame buffers as two-color paletted images.
type GIFRecorder struct {
	size   core.Size
	live   color.RGBA
	colors color.Palette
	delay  int
	frames []*image.Paletted
}

// NewGIFRecorder returns a recorder for frames of the given size. delay is
// the per-frame delay in hundredths of a second.
func NewGIFRecorder(size core.Size, p render.Palette, delay int) *GIFRecorder {
	return &GIFRecorder{
		size:   size,
		live:   p.Live,
		colors: color.Palette{p.Dead, p.Live},
		delay:  delay,
	}
}

// Add copies one frame buffer into the recording.
func (r *GIFRecorder) Add(frame []byte) {
	core.CheckFrame(r.size, frame)
	img := image.NewPaletted(image.Rect(0, 0, r.size.W, r.size.H), r.colors)
	for i := range img.Pix {
		px := frame[i*4 : i*4+4]
		if px[0] == r.live.R && px[1] == r.live.G && px[2] == r.live.B && px[3] == r.live.A {
			img.Pix[i] = 1
		}
	}
	r.frames = append(r.frames, img)
}

// Len returns the number of recorded frames.
func (r *GIFRecorder) Len() int { return len(r.frames) }

// Encode writes the recording as a looping animated GIF.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{
		Image: r.frames,
		Delay: make([]int, len(r.frames)),
	}
	for i := range anim.Delay {
		anim.Delay[i] = r.delay
	}
	return gif.EncodeAll(w, anim)
}

// Save encodes the recording into the file at path.
func (r *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
