// Package sim owns the simulation goroutine and the shared pixel buffer.
//
// Two threads of execution touch a Controller: the host's control thread,
// which starts, stops and reconfigures the simulation and presents frames,
// and the single simulation goroutine the controller spawns, which seeds
// noise, steps the grid and renders into the pixel buffer. The pixel buffer
// is guarded by its own mutex; the run/stop state is a guarded enum with a
// condition variable used only to signal goroutine exit to a joining Stop.
package sim

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/render"
)

// Mode selects how each tick seeds the grid.
type Mode int

const (
	// ModeRandomSeed injects random noise at the grid borders every tick.
	ModeRandomSeed Mode = iota
	// ModeStamp relies solely on stamped patterns.
	ModeStamp
)

// ParseMode maps a host-supplied mode name onto a Mode. Names meaning random
// seeding map to ModeRandomSeed; anything else means stamp mode.
func ParseMode(name string) Mode {
	switch name {
	case "random", "random_seed":
		return ModeRandomSeed
	}
	return ModeStamp
}

// State is the simulation lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

// Presenter pushes the pixel buffer to the screen. Present is called from
// the simulation goroutine; done must be invoked exactly once when the flush
// completes, from any thread.
type Presenter interface {
	Present(done func())
}

// Controller coordinates the simulation goroutine with the host.
type Controller struct {
	grid     *life.Grid
	stamps   *life.Library
	renderer *render.Renderer
	pacer    *core.Pacer

	mu         sync.Mutex
	cond       *sync.Cond
	state      State
	mode       Mode
	threadLive bool
	presenter  Presenter

	pixMu sync.Mutex
	pix   *render.Buffer

	// cells is the simulation goroutine's private snapshot buffer. Control-
	// thread renders (Clear) allocate their own.
	cells []uint8

	flushPending atomic.Bool
	generation   atomic.Uint64
}

// New builds a controller with buffers allocated for the given view size.
// A degenerate size is the allocation-failure class and is fatal to the
// caller, so it is reported rather than clamped.
func New(w, h int, seed int64, tps int) (*Controller, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sim: invalid view size %dx%d", w, h)
	}
	c := &Controller{
		grid:     life.NewGrid(w, h, core.NewBitSource(seed)),
		stamps:   life.NewLibrary(),
		renderer: render.NewRenderer(color.White, color.Black),
		pacer:    core.NewPacer(tps),
		pix:      render.NewBuffer(w, h),
	}
	c.cond = sync.NewCond(&c.mu)
	return c, nil
}

// SetPresenter installs the presentation surface. Call before Start.
func (c *Controller) SetPresenter(p Presenter) {
	c.mu.Lock()
	c.presenter = p
	c.mu.Unlock()
}

// Size returns the current view size.
func (c *Controller) Size() core.Size {
	c.pixMu.Lock()
	defer c.pixMu.Unlock()
	if c.pix == nil {
		return core.Size{}
	}
	return c.pix.Size()
}

// IsRunning reports whether a simulation goroutine is live.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Running && c.threadLive
}

// Mode returns the play mode of the most recent Start.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Generation returns the number of ticks stepped since construction.
func (c *Controller) Generation() uint64 { return c.generation.Load() }

// RuleString returns the active rule in "S/B" form.
func (c *Controller) RuleString() string { return c.grid.Rule().String() }

// StampName returns the name of the stamp AddStampAtPoint would place.
func (c *Controller) StampName() string { return c.stamps.Current().Name() }

// Start spawns the simulation goroutine in the requested mode. Starting an
// already-running simulation is a no-op when the mode matches; a different
// mode stops and joins the old goroutine first.
func (c *Controller) Start(mode Mode) error {
	c.pixMu.Lock()
	allocated := c.pix != nil && !c.pix.Size().Empty()
	c.pixMu.Unlock()
	if !allocated {
		return fmt.Errorf("sim: start requested before buffers were allocated")
	}

	c.mu.Lock()
	if c.threadLive && c.state == Running && c.mode == mode {
		c.mu.Unlock()
		return nil
	}
	c.state = Stopped
	for c.threadLive {
		c.cond.Wait()
		// A concurrent Start may have spawned a fresh goroutine while this
		// one waited. Matching mode means its work is done; otherwise ask
		// the new goroutine to stop as well and keep waiting.
		if c.state == Running {
			if c.mode == mode {
				c.mu.Unlock()
				return nil
			}
			c.state = Stopped
		}
	}
	c.mode = mode
	c.state = Running
	c.threadLive = true
	c.mu.Unlock()

	go c.run()
	return nil
}

// Stop signals the simulation goroutine and blocks until it exits. Stopping
// an already-stopped controller is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.state = Stopped
	for c.threadLive {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// run is the simulation goroutine body. It re-checks the stop condition once
// per tick, so Stop blocks for at most one tick duration.
func (c *Controller) run() {
	defer func() {
		c.mu.Lock()
		c.threadLive = false
		c.cond.Broadcast()
		c.mu.Unlock()
	}()

	for {
		c.mu.Lock()
		if c.state != Running {
			c.mu.Unlock()
			return
		}
		mode := c.mode
		c.mu.Unlock()

		if mode == ModeRandomSeed {
			c.grid.AddRandomSeed()
		}
		c.grid.Step()
		c.generation.Add(1)

		// Render from a snapshot taken under the grid lock, so control-thread
		// stamping or clearing never shares the cell array with the renderer.
		s := c.grid.Size()
		if len(c.cells) != s.W*s.H {
			c.cells = make([]uint8, s.W*s.H)
		}
		if c.grid.Snapshot(c.cells) {
			c.pixMu.Lock()
			c.renderer.Render(c.cells, c.pix)
			c.pixMu.Unlock()
			c.FlushPixelBuffer()
		}
		c.pacer.Wait()
	}
}

// SetRule installs a new automaton rule. Malformed descriptors leave the
// active rule unchanged.
func (c *Controller) SetRule(rule string) {
	c.grid.SetRule(rule)
}

// Clear resets the grid to all-dead and blacks out the pixel buffer.
func (c *Controller) Clear() {
	c.grid.Clear()
	s := c.grid.Size()
	buf := make([]uint8, s.W*s.H)
	if c.grid.Snapshot(buf) {
		c.pixMu.Lock()
		c.renderer.Render(buf, c.pix)
		c.pixMu.Unlock()
	}
	c.FlushPixelBuffer()
}

// AddStampAtPoint copies the current stamp onto the grid centered at (x, y).
// Out-of-range portions are clipped.
func (c *Controller) AddStampAtPoint(x, y int) {
	c.grid.ApplyStamp(c.stamps.Current(), x, y)
}

// NextStamp advances the stamp cursor, wrapping past the end of the library.
func (c *Controller) NextStamp() {
	c.stamps.Advance()
}

// Run starts the simulation in the mode named by the host. The name is
// interpreted by ParseMode.
func (c *Controller) Run(mode string) error {
	return c.Start(ParseMode(mode))
}

// Resize reallocates the pixel and cell buffers for a new view size and
// resets the simulation state. The old pixel buffer is replaced wholesale
// under the pixel lock; a render racing the swap sees a size mismatch and
// skips the frame.
func (c *Controller) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("sim: invalid view size %dx%d", w, h)
	}
	c.pixMu.Lock()
	c.pix = render.NewBuffer(w, h)
	c.pixMu.Unlock()
	c.grid.Resize(w, h)
	return nil
}

// ReadPixels runs f with the pixel buffer under the pixel lock. The slice
// must not be retained past the call.
func (c *Controller) ReadPixels(f func(pix []byte, w, h int)) {
	c.pixMu.Lock()
	defer c.pixMu.Unlock()
	if c.pix == nil {
		return
	}
	s := c.pix.Size()
	f(c.pix.Pix(), s.W, s.H)
}

// FlushPixelBuffer asks the presenter to push the pixel buffer to screen.
// While a flush is pending no new request is made; rendering continues and
// the next flush picks up the latest frame.
func (c *Controller) FlushPixelBuffer() {
	c.mu.Lock()
	p := c.presenter
	c.mu.Unlock()
	if p == nil {
		return
	}
	if !c.flushPending.CompareAndSwap(false, true) {
		return
	}
	p.Present(func() { c.flushPending.Store(false) })
}
