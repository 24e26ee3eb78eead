// Package term drives a paintable simulation inside a terminal using tcell.
// Each terminal cell shows two grid rows with an upper half block: the
// foreground is the upper grid cell and the background the lower one.
package term

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"powder/internal/app"
	"powder/internal/core"
	"powder/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock   = '▀'
	frameRate   = 16 * time.Millisecond
	statusLines = 1
)

// GridSize returns the largest grid that fits a terminal of cols×rows while
// leaving room for the status line.
func GridSize(cols, rows int) core.Size {
	h := (rows - statusLines) * 2
	if cols < 1 {
		cols = 1
	}
	if h < 2 {
		h = 2
	}
	return core.Size{W: cols, H: h}
}

// Driver owns the terminal loop. Grid access happens only on the goroutine
// calling Run (or the Handle/Tick/Draw methods directly).
type Driver struct {
	screen  tcell.Screen
	sim     core.Sim
	colors  core.ColorGrid
	painter core.Painter
	params  core.ParameterProvider

	pixels  *render.PixelBuffer
	brush   core.Brush
	palette core.Palette
	step    *core.FixedStep

	seed     int64
	paused   bool
	tickOnce bool

	cx, cy             int
	inside             bool
	primary, secondary bool
}

// New wires a driver for sim onto an initialised screen.
func New(screen tcell.Screen, sim core.Sim, cfg *app.Config) (*Driver, error) {
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
	d := &Driver{
		screen:  screen,
		sim:     sim,
		colors:  colors,
		painter: painter,
		pixels:  render.NewPixelBuffer(sim.Size()),
		brush:   core.Brush{Radius: cfg.Brush},
		palette: palette,
		step:    core.NewFixedStep(cfg.TPS),
		seed:    cfg.Seed,
	}
	d.params, _ = sim.(core.ParameterProvider)
	return d, nil
}

// Run pumps terminal events and ticks the simulation until the user quits.
func (d *Driver) Run() error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(frameRate)
	defer frames.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !d.Handle(ev) {
				return nil
			}
		case <-frames.C:
			if d.step.ShouldStep() {
				d.Tick()
			}
			d.Draw()
			d.screen.Show()
		}
	}
}

// Handle applies one terminal event and reports false when the user quit.
func (d *Driver) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		buttons := ev.Buttons()
		d.cx, d.cy = col, row*2
		d.inside = d.sim.Size().Contains(d.cx, d.cy)
		d.primary = buttons&tcell.Button1 != 0
		d.secondary = buttons&tcell.Button2 != 0
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		d.paused = false
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		d.paused = !d.paused
	case 'n':
		d.tickOnce = true
	case 'r':
		d.reset(d.seed)
	case 's':
		d.reset(time.Now().UnixNano())
	case 'e':
		d.palette.Erasing = !d.palette.Erasing
	case '[':
		d.brush.Resize(-1)
	case ']':
		d.brush.Resize(1)
	}
	return true
}

func (d *Driver) reset(seed int64) {
	d.seed = seed
	d.sim.Reset(seed)
	d.tickOnce = false
	log.Printf("reset with seed %d", seed)
}

// Tick paints under the held buttons and advances the simulation unless
// paused.
func (d *Driver) Tick() {
	if d.inside {
		if m, ok := d.palette.Pick(d.primary, d.secondary); ok {
			d.brush.Stroke(d.painter, d.sim.Size(), d.cx, d.cy, m)
		}
	}
	if d.paused && !d.tickOnce {
		return
	}
	d.sim.Step()
	d.tickOnce = false
}

// Draw writes the grid, brush cursor and status line into the screen's back
// buffer. The caller decides when to Show.
func (d *Driver) Draw() {
	d.pixels.Sync(d.colors)
	size := d.sim.Size()

	var cursor map[[2]int]bool
	if d.inside {
		cursor = map[[2]int]bool{}
		d.brush.Each(d.cx, d.cy, size, func(x, y int) { cursor[[2]int{x, y}] = true })
	}
	pixel := func(x, y int) tcell.Color {
		c := d.pixels.At(x, y)
		if cursor[[2]int{x, y}] {
			c = render.Invert(c)
		}
		return rgb(c)
	}

	for row := 0; row*2 < size.H; row++ {
		for x := 0; x < size.W; x++ {
			top := pixel(x, row*2)
			bottom := tcell.ColorBlack
			if row*2+1 < size.H {
				bottom = pixel(x, row*2+1)
			}
			d.screen.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	d.drawStatus((size.H + 1) / 2)
}

func (d *Driver) drawStatus(row int) {
	cols, _ := d.screen.Size()
	line := d.Status()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		d.screen.SetContent(x, row, r, nil, style)
	}
}

// Status renders the one-line summary shown under the grid.
func (d *Driver) Status() string {
	get := func(key string) string {
		if d.params == nil {
			return "?"
		}
		if p, ok := d.params.Parameters().Lookup(key); ok {
			return p.Value
		}
		return "?"
	}
	material := d.palette.Primary.Name + "/" + d.palette.Secondary.Name
	if d.palette.Erasing {
		material = "erase"
	}
	state := ""
	if d.paused {
		state = " [paused]"
	}
	return fmt.Sprintf(" %s tick %s  tps %.0f  sand %s  wood %s  brush %d %s%s",
		d.sim.Name(), get("tick"), d.step.ActualTPS(), get("count_sand"), get("count_wood"),
		d.brush.Radius, material, state)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
