//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifebox/internal/app"
	"lifebox/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := sim.New(cfg.Width, cfg.Height, cfg.Seed, cfg.TPS)
	if err != nil {
		log.Fatal(err)
	}
	ctrl.SetRule(cfg.Rule)

	game := app.New(ctrl, cfg)
	ctrl.SetPresenter(game)
	if cfg.Mode != "" {
		if err := ctrl.Run(cfg.Mode); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowTitle("lifebox")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	ctrl.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
