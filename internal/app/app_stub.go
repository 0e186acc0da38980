//go:build !ebiten

package app

import (
	"fmt"

	"lifebox/internal/sim"
)

// Game keeps package app compiling in headless builds; the engine under
// internal/sim is fully usable without it.
type Game struct{}

// New refuses to construct a window host without the ebiten build tag.
func New(*sim.Controller, *Config) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Present discards flush requests; headless builds have nowhere to put them.
func (g *Game) Present(func()) {}

// Update reports the missing GUI build tag instead of ticking.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw takes any so the headless build does not depend on ebiten's image type.
func (g *Game) Draw(any) {}

// Layout has no window to measure.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
