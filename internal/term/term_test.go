package term

import (
	"strings"
	"testing"

	"powder/internal/app"
	"powder/internal/render"
	"powder/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newTestDriver(t *testing.T, w, h int) (*Driver, *sand.Grid, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h/2+statusLines)

	g := sand.New(w, h)
	cfg := app.NewConfig()
	cfg.Brush = 0
	d, err := New(screen, g, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, g, screen
}

func press(d *Driver, col, row int, buttons tcell.ButtonMask) {
	d.Handle(tcell.NewEventMouse(col, row, buttons, tcell.ModNone))
}

func key(d *Driver, r rune) bool {
	return d.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestGridSizeLeavesStatusLine(t *testing.T) {
	if got := GridSize(80, 24); got.W != 80 || got.H != 46 {
		t.Fatalf("GridSize(80, 24) = %+v, want 80x46", got)
	}
	if got := GridSize(0, 0); got.W != 1 || got.H != 2 {
		t.Fatalf("GridSize(0, 0) = %+v, want 1x2", got)
	}
}

func TestPrimaryButtonPaintsUpperHalf(t *testing.T) {
	d, g, _ := newTestDriver(t, 10, 10)
	key(d, ' ')
	press(d, 3, 2, tcell.Button1)
	d.Tick()

	c, _ := g.Get(3, 4)
	if c.Kind != sand.Granular {
		t.Fatalf("cell (3,4) = %v, want sand", c.Kind)
	}
	if census := g.Census(); census[sand.Granular] != 1 {
		t.Fatalf("painted %d grains, want 1", census[sand.Granular])
	}
}

func TestSecondaryButtonPaintsWood(t *testing.T) {
	d, g, _ := newTestDriver(t, 10, 10)
	press(d, 1, 1, tcell.Button2)
	d.Tick()

	if c, _ := g.Get(1, 2); c.Kind != sand.Static {
		t.Fatalf("cell (1,2) = %v, want wood", c.Kind)
	}
}

func TestEraseModeClearsCells(t *testing.T) {
	d, g, _ := newTestDriver(t, 10, 10)
	g.Set(5, 6, sand.Static)
	key(d, 'e')
	press(d, 5, 3, tcell.Button1)
	d.Tick()

	if c, _ := g.Get(5, 6); c.Kind != sand.Empty {
		t.Fatalf("erase left %v at (5,6)", c.Kind)
	}
}

func TestReleasedButtonsDoNotPaint(t *testing.T) {
	d, g, _ := newTestDriver(t, 10, 10)
	press(d, 3, 2, tcell.ButtonNone)
	d.Tick()

	if census := g.Census(); census[sand.Granular]+census[sand.Static] != 0 {
		t.Fatalf("unexpected paint: %v", census)
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	d, g, _ := newTestDriver(t, 4, 4)
	key(d, ' ')
	d.Tick()
	if g.Tick() != 0 {
		t.Fatalf("paused driver advanced to tick %d", g.Tick())
	}
	key(d, 'n')
	d.Tick()
	d.Tick()
	if g.Tick() != 1 {
		t.Fatalf("single step advanced to tick %d, want 1", g.Tick())
	}
	key(d, ' ')
	d.Tick()
	if g.Tick() != 2 {
		t.Fatalf("resumed driver at tick %d, want 2", g.Tick())
	}
}

func TestKeysQuitAndResizeBrush(t *testing.T) {
	d, _, _ := newTestDriver(t, 4, 4)
	key(d, ']')
	key(d, ']')
	key(d, '[')
	if d.brush.Radius != 1 {
		t.Fatalf("brush radius = %d, want 1", d.brush.Radius)
	}
	if !key(d, 'x') {
		t.Fatal("unbound key should not quit")
	}
	if key(d, 'q') {
		t.Fatal("q should quit")
	}
	if d.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestResetClearsGrid(t *testing.T) {
	d, g, _ := newTestDriver(t, 6, 6)
	g.Set(2, 2, sand.Granular)
	key(d, 'r')
	if census := g.Census(); census[sand.Granular] != 0 {
		t.Fatalf("reset kept %d grains", census[sand.Granular])
	}
}

func TestDrawUsesHalfBlocks(t *testing.T) {
	d, g, screen := newTestDriver(t, 6, 6)
	g.Set(2, 1, sand.Static)
	wood, _ := g.Get(2, 1)
	d.Draw()

	r, _, style, _ := screen.GetContent(2, 0)
	if r != halfBlock {
		t.Fatalf("rune = %q, want %q", r, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if want := rgb(render.Background); fg != want {
		t.Fatalf("top half = %v, want background %v", fg, want)
	}
	if want := tcell.NewRGBColor(int32(wood.Color.R), int32(wood.Color.G), int32(wood.Color.B)); bg != want {
		t.Fatalf("bottom half = %v, want wood %v", bg, want)
	}
}

func TestStatusLine(t *testing.T) {
	d, g, screen := newTestDriver(t, 8, 8)
	g.Set(1, 1, sand.Granular)
	key(d, ' ')

	status := d.Status()
	for _, want := range []string{"tick 0", "sand 1", "wood 0", "[paused]"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}

	d.Draw()
	r, _, _, _ := screen.GetContent(1, 4)
	if r != rune(status[1]) {
		t.Fatalf("status row starts with %q, want %q", r, status[1])
	}
}
