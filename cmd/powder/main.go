//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"powder/internal/app"
	"powder/internal/core"
	_ "powder/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("powder: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
