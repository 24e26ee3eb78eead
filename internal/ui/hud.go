//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"powder/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view: the
// adjustable controls on top, the read-only snapshot below.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls    []hudControl
	floatSetter core.FloatParameterSetter
	offsetX     int
}

type hudControl struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudMuted      = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok && h.floatSetter != nil {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			top := controlsTop + len(h.controls)*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	return h
}

// Update refreshes the snapshot and applies clicks on the +/- buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.control.Key)
		if !ok {
			c.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		c.value, c.hasValue = v, err == nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case pt.In(c.minusRect):
			h.adjust(c, -1)
		case pt.In(c.plusRect):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) adjust(c *hudControl, direction float64) {
	step := c.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := c.control.Clamp(c.value + direction*step)
	if math.Abs(target-c.value) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(c.control.Key, target) {
		c.value = target
	}
}

// Draw paints the panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, strings.ToUpper(h.sim.Name()), face, panelPadding, panelPadding+headerBaseline, hudText)
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, y, hudText)
		value := "--"
		if c.hasValue {
			value = strconv.FormatFloat(c.value, 'f', 2, 64)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, y, hudText)
		h.drawButton(c.minusRect, "-", c.hasValue)
		h.drawButton(c.plusRect, "+", c.hasValue)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, hudMuted)
		y += rowHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, hudText)
			y += rowHeight
		}
		y += rowHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	rowHeight      = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	controlsTop    = panelPadding + headerBaseline + 14
)
