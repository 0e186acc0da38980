//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"sync"

	"lifebox/internal/script"
	"lifebox/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game hosts a sim.Controller in an ebiten window. It plays the role of the
// control thread: input is translated into script method calls, the window
// resize path drives Controller.Resize, and Draw presents the shared pixel
// buffer. Game is the controller's Presenter; flush completions are
// acknowledged once the frame that carried them has been drawn.
type Game struct {
	ctrl  *sim.Controller
	scale int

	img        *ebiten.Image
	imgW, imgH int

	flushMu   sync.Mutex
	flushDone []func()
}

// New constructs a Game for the provided controller.
func New(ctrl *sim.Controller, cfg *Config) *Game {
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	return &Game{ctrl: ctrl, scale: scale}
}

// Present queues a flush acknowledgement for the next Draw. Called from the
// simulation goroutine.
func (g *Game) Present(done func()) {
	g.flushMu.Lock()
	g.flushDone = append(g.flushDone, done)
	g.flushMu.Unlock()
}

func (g *Game) dispatch(method string, args ...any) {
	script.Dispatch(g.ctrl, method, args)
}

// Update translates input into engine commands.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dispatch(script.MethodRunSimulation, "random")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.dispatch(script.MethodRunSimulation, "stamp")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.dispatch(script.MethodStopSimulation)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.dispatch(script.MethodClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.dispatch(script.MethodNextStamp)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.dispatch(script.MethodSetRule, "23/3")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.dispatch(script.MethodSetRule, "23/36")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.dispatch(script.MethodSetRule, "245/368")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.dispatch(script.MethodAddStampAtPoint, mx/g.scale, my/g.scale)
	}
	return nil
}

// Draw blits the shared pixel buffer and acknowledges pending flushes.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.ReadPixels(func(pix []byte, w, h int) {
		if g.img == nil || g.imgW != w || g.imgH != h {
			g.img = ebiten.NewImage(w, h)
			g.imgW, g.imgH = w, h
		}
		g.img.WritePixels(pix)
	})
	if g.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawImage(g.img, op)
	}

	g.drawStatus(screen)

	g.flushMu.Lock()
	done := g.flushDone
	g.flushDone = nil
	g.flushMu.Unlock()
	for _, f := range done {
		f()
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	state := "stopped"
	if g.ctrl.IsRunning() {
		if g.ctrl.Mode() == sim.ModeRandomSeed {
			state = "random"
		} else {
			state = "stamp"
		}
	}
	status := fmt.Sprintf("%s  rule %s  gen %d  stamp %s",
		state, g.ctrl.RuleString(), g.ctrl.Generation(), g.ctrl.StampName())
	text.Draw(screen, status, basicfont.Face7x13, 4, screen.Bounds().Dy()-6, color.White)
}

// Layout reacts to window resizes by reallocating the simulation buffers to
// the new cell dimensions, then reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth / g.scale
	h := outsideHeight / g.scale
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	if s := g.ctrl.Size(); s.W != w || s.H != h {
		// Resize never fails for the clamped dimensions above.
		_ = g.ctrl.Resize(w, h)
	}
	return w * g.scale, h * g.scale
}
