//go:build !ebiten

package ui

import (
	"powder/internal/core"
	"powder/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, *render.PixelBuffer, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(int, int, bool, core.Brush, core.Palette, bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
