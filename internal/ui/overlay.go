//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"powder/internal/core"
	"powder/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay draws the brush cursor and the frame/tick diagnostics on top of the
// grid.
type Overlay struct {
	sim   core.Sim
	buf   *render.PixelBuffer
	scale int
	pixel *ebiten.Image

	cx, cy  int
	inside  bool
	brush   core.Brush
	palette core.Palette
	paused  bool
}

// NewOverlay constructs a new overlay reading grid colours from buf.
func NewOverlay(sim core.Sim, buf *render.PixelBuffer, scale int) *Overlay {
	o := &Overlay{sim: sim, buf: buf, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the cursor and brush state for the next Draw.
func (o *Overlay) Update(cx, cy int, inside bool, brush core.Brush, palette core.Palette, paused bool) {
	o.cx, o.cy, o.inside = cx, cy, inside
	o.brush = brush
	o.palette = palette
	o.paused = paused
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.inside {
		o.brush.Each(o.cx, o.cy, o.sim.Size(), func(x, y int) {
			o.drawCell(screen, x, y, render.Invert(o.buf.At(x, y)))
		})
	}
	ebitenutil.DebugPrintAt(screen, o.status(), 4, 4)
}

func (o *Overlay) drawCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.GeoM.Translate(float64(x*o.scale), float64(y*o.scale))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) status() string {
	tick := "?"
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		if p, ok := provider.Parameters().Lookup("tick"); ok {
			tick = p.Value
		}
	}
	material := o.palette.Primary.Name + "/" + o.palette.Secondary.Name
	if o.palette.Erasing {
		material = "erase"
	}
	state := ""
	if o.paused {
		state = " [paused]"
	}
	return fmt.Sprintf("FPS: %.0f\nTPS: %.0f\ntick %s%s\nbrush %d %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), tick, state, o.brush.Radius, material)
}
