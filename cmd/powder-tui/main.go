// Command powder-tui runs the sand simulation inside a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"powder/internal/app"
	"powder/internal/core"
	_ "powder/internal/sims/sand"
	"powder/internal/term"

	"github.com/gdamore/tcell/v2"
)

const (
	logDir      = "logs"
	logFileName = "powder-tui.log"
)

// setupLogging routes the standard logger to logs/powder-tui.log when debug
// is set and discards it otherwise, since stderr belongs to the terminal UI.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Brush = 0, 0, 2
	cfg.Bind(flag.CommandLine)
	debug := flag.Bool("debug", false, "write a debug log to "+filepath.Join(logDir, logFileName))
	flag.Parse()

	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	fit := term.GridSize(cols, rows)
	if cfg.Width <= 0 {
		cfg.Width = fit.W
	}
	if cfg.Height <= 0 {
		cfg.Height = fit.H
	}
	log.Printf("terminal %dx%d, grid %dx%d", cols, rows, cfg.Width, cfg.Height)

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	driver, err := term.New(screen, sim, cfg)
	if err != nil {
		return err
	}
	return driver.Run()
}
