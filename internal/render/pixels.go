package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette maps a binary cell state to an RGBA quadruple.
type Palette struct {
	Live color.RGBA
	Dead color.RGBA
}

// Put writes the color for alive into the i-th pixel of buf.
func (p Palette) Put(buf []byte, i int, alive bool) {
	col := p.Dead
	if alive {
		col = p.Live
	}
	px := buf[i*4 : i*4+4 : i*4+4]
	px[0] = col.R
	px[1] = col.G
	px[2] = col.B
	px[3] = col.A
}

// Fill converts a whole generation into RGBA pixels in buf.
func (p Palette) Fill(buf []byte, cells []bool) {
	for i, c := range cells {
		p.Put(buf, i, c)
	}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a color. Alpha defaults to
// opaque.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("render: color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbbaa".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
