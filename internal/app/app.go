//go:build ebiten

package app

import (
	"fmt"
	"time"

	"powder/internal/core"
	"powder/internal/render"
	"powder/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a paintable simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	colors  core.ColorGrid
	painter core.Painter
	gp      *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	brush   core.Brush
	palette core.Palette

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The sim must expose
// colours and accept painting.
func New(sim core.Sim, cfg *Config) (*Game, error) {
	colors, ok := sim.(core.ColorGrid)
	if !ok {
		return nil, fmt.Errorf("sim %q does not expose cell colours", sim.Name())
	}
	painter, ok := sim.(core.Painter)
	if !ok {
		return nil, fmt.Errorf("sim %q does not accept painting", sim.Name())
	}
	palette, ok := core.NewPalette(painter, cfg.Primary, cfg.Secondary)
	if !ok {
		return nil, fmt.Errorf("sim %q has no materials %q/%q", sim.Name(), cfg.Primary, cfg.Secondary)
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	gp := render.NewGridPainter(sim.Size())
	g := &Game{
		sim:     sim,
		colors:  colors,
		painter: painter,
		gp:      gp,
		overlay: ui.NewOverlay(sim, gp.Buffer(), scale),
		brush:   core.Brush{Radius: cfg.Brush},
		palette: palette,
		scale:   scale,
		seed:    cfg.Seed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic, applies brush strokes and advances the
// simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.palette.Erasing = !g.palette.Erasing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.Resize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.Resize(1)
	}

	size := g.sim.Size()
	if g.hud != nil {
		g.hud.Update(size.W * g.scale)
	}

	cx, cy, inside := g.cursorCell()
	if inside {
		primary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		secondary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
		if m, ok := g.palette.Pick(primary, secondary); ok {
			g.brush.Stroke(g.painter, size, cx, cy, m)
		}
	}
	g.overlay.Update(cx, cy, inside, g.brush, g.palette, g.paused)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// cursorCell maps the pointer to grid coordinates.
func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y := mx/g.scale, my/g.scale
	return x, y, g.sim.Size().Contains(x, y)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.gp.Blit(screen, g.colors, g.scale)
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += hudWidth
	}
	return w, s.H * g.scale
}
