//go:build ebiten

package render

import (
	"powder/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a PixelBuffer into an ebiten image and draws it scaled.
type GridPainter struct {
	buf *PixelBuffer
	img *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{buf: NewPixelBuffer(size), img: ebiten.NewImage(size.W, size.H)}
}

// Buffer exposes the CPU-side pixels.
func (gp *GridPainter) Buffer() *PixelBuffer { return gp.buf }

// Blit pulls dirty cells from src, uploads them when anything changed and
// draws the grid image.
func (gp *GridPainter) Blit(dst *ebiten.Image, src core.ColorGrid, scale int) {
	if gp.buf.Sync(src) > 0 {
		gp.img.WritePixels(gp.buf.Pix())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
