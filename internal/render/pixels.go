package render

import (
	"image/color"

	"powder/internal/core"
)

// Background is drawn wherever a cell is transparent.
var Background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// PixelBuffer mirrors a ColorGrid as RGBA bytes, updated from dirty cells
// only.
type PixelBuffer struct {
	size core.Size
	pix  []byte
}

// NewPixelBuffer allocates a buffer for a grid of the given size filled with
// the background colour.
func NewPixelBuffer(size core.Size) *PixelBuffer {
	b := &PixelBuffer{size: size, pix: make([]byte, 4*size.Cells())}
	for i := 0; i < size.Cells(); i++ {
		b.put(i, color.NRGBA{})
	}
	return b
}

// Sync copies every dirty cell of src into the buffer and returns how many
// pixels changed.
func (b *PixelBuffer) Sync(src core.ColorGrid) int {
	n := 0
	src.Refresh(func(x, y int, c color.NRGBA) {
		if !b.size.Contains(x, y) {
			return
		}
		b.put(b.size.Index(x, y), c)
		n++
	})
	return n
}

// Pix exposes the RGBA bytes in row-major order.
func (b *PixelBuffer) Pix() []byte { return b.pix }

// At returns the buffered pixel at (x, y).
func (b *PixelBuffer) At(x, y int) color.RGBA {
	if !b.size.Contains(x, y) {
		return color.RGBA{}
	}
	base := 4 * b.size.Index(x, y)
	return color.RGBA{R: b.pix[base], G: b.pix[base+1], B: b.pix[base+2], A: b.pix[base+3]}
}

func (b *PixelBuffer) put(i int, c color.NRGBA) {
	out := flatten(c)
	base := i * 4
	b.pix[base+0] = out.R
	b.pix[base+1] = out.G
	b.pix[base+2] = out.B
	b.pix[base+3] = out.A
}

// flatten composites c over the background so the buffer is always opaque.
func flatten(c color.NRGBA) color.RGBA {
	if c.A == 255 {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	a := uint32(c.A)
	mix := func(fg, bg uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
	}
	return color.RGBA{R: mix(c.R, Background.R), G: mix(c.G, Background.G), B: mix(c.B, Background.B), A: 255}
}

// Invert returns the colour negative of c, used to draw the brush outline so
// it stays visible over any material.
func Invert(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255}
}
