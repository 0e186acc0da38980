package life

import (
	"sync"

	"lifebox/internal/core"
)

// The cell buffers carry a one-cell margin ring around the visible field.
// Border noise is written into the margin, so a step reads it through
// neighbor lookups without ever rendering it.
const margin = 1

// Grid is a double-buffered cell field. Step reads the current buffer and
// writes the next, then swaps their roles, so a pass never observes its own
// writes. Noise injected into the margin reaches the visible border cells on
// the first step after seeding and creeps further inward on each step that
// follows.
//
// All methods take the grid mutex. Callers are still expected to stop the
// simulation before reconfiguring (rule, clear, resize); the lock turns a
// violation of that discipline into a stale generation instead of a race.
type Grid struct {
	mu     sync.Mutex
	w, h   int
	stride int
	cur    []uint8
	nxt    []uint8
	rule   Rule
	bits   *core.BitSource
}

// NewGrid allocates an all-dead grid with the Conway rule. The bit source
// feeds border noise and must not be nil.
func NewGrid(w, h int, bits *core.BitSource) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:      w,
		h:      h,
		stride: w + 2*margin,
		cur:    make([]uint8, (w+2*margin)*(h+2*margin)),
		nxt:    make([]uint8, (w+2*margin)*(h+2*margin)),
		rule:   ConwayRule(),
		bits:   bits,
	}
}

// idx maps visible coordinates to a buffer index. Coordinates from -margin
// to w/h+margin-1 are valid; the ring outside the visible field is the
// noise margin.
func (g *Grid) idx(x, y int) int {
	return (y+margin)*g.stride + (x + margin)
}

// Size returns the visible grid dimensions.
func (g *Grid) Size() core.Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return core.Size{W: g.w, H: g.h}
}

// Set writes one visible cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cur[g.idx(x, y)] = v
}

// At reads one visible cell. Out-of-range coordinates read as dead.
func (g *Grid) At(x, y int) uint8 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0
	}
	return g.cur[g.idx(x, y)]
}

// Snapshot copies the visible cells into dst in row-major order. It reports
// whether dst matched the grid size; on a mismatch (possible mid-resize)
// nothing is copied. Renderers work from the snapshot, so they never share
// the backing array with a concurrent mutation.
func (g *Grid) Snapshot(dst []uint8) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(dst) != g.w*g.h {
		return false
	}
	for y := 0; y < g.h; y++ {
		start := g.idx(0, y)
		copy(dst[y*g.w:(y+1)*g.w], g.cur[start:start+g.w])
	}
	return true
}

// Rule returns the active automaton rule.
func (g *Grid) Rule() Rule {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rule
}

// SetRule parses an "S/B" descriptor and installs it. A malformed descriptor
// leaves the active rule unchanged; there is no error to surface.
func (g *Grid) SetRule(s string) {
	r, err := ParseRule(s)
	if err != nil {
		return
	}
	g.mu.Lock()
	g.rule = r
	g.mu.Unlock()
}

// Resize reallocates both buffers to the new dimensions and resets every
// cell to dead. No prior state survives.
func (g *Grid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.mu.Lock()
	g.w, g.h = w, h
	g.stride = w + 2*margin
	g.cur = make([]uint8, (w+2*margin)*(h+2*margin))
	g.nxt = make([]uint8, (w+2*margin)*(h+2*margin))
	g.mu.Unlock()
}

// Clear resets both buffers, margin included, to all-dead without resizing.
func (g *Grid) Clear() {
	g.mu.Lock()
	for i := range g.cur {
		g.cur[i] = 0
	}
	for i := range g.nxt {
		g.nxt[i] = 0
	}
	g.mu.Unlock()
}

// AddRandomSeed writes random bits into the margin ring of the current
// buffer. The noise stays invisible until a step folds it into the visible
// border cells through their neighbor counts.
func (g *Grid) AddRandomSeed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	w, h := g.w, g.h
	if w == 0 || h == 0 {
		return
	}
	for x := -margin; x < w+margin; x++ {
		g.cur[g.idx(x, -1)] = g.bits.Value()
		g.cur[g.idx(x, h)] = g.bits.Value()
	}
	for y := 0; y < h; y++ {
		g.cur[g.idx(-1, y)] = g.bits.Value()
		g.cur[g.idx(w, y)] = g.bits.Value()
	}
}

// Step advances every visible cell one generation and swaps the buffers.
// Neighbor lookups at the field edge read the margin ring, which is carried
// through to the next buffer unchanged.
func (g *Grid) Step() {
	g.mu.Lock()
	defer g.mu.Unlock()
	w, h := g.w, g.h
	if w == 0 || h == 0 {
		return
	}
	stride := g.stride
	copy(g.nxt[:stride], g.cur[:stride])
	copy(g.nxt[(h+1)*stride:], g.cur[(h+1)*stride:])
	for y := 0; y < h; y++ {
		g.nxt[g.idx(-1, y)] = g.cur[g.idx(-1, y)]
		g.nxt[g.idx(w, y)] = g.cur[g.idx(w, y)]
		for x := 0; x < w; x++ {
			i := g.idx(x, y)
			count := int(g.cur[i-stride-1]) + int(g.cur[i-stride]) + int(g.cur[i-stride+1]) +
				int(g.cur[i-1]) + int(g.cur[i+1]) +
				int(g.cur[i+stride-1]) + int(g.cur[i+stride]) + int(g.cur[i+stride+1])
			g.nxt[i] = 0
			if g.cur[i] == 1 {
				if g.rule.Survives(count) {
					g.nxt[i] = 1
				}
			} else if g.rule.Born(count) {
				g.nxt[i] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// ApplyStamp copies the stamp pattern onto the current buffer with the stamp
// anchor at (x, y). Cells falling outside the visible field are skipped.
// Copy semantics make repeated application at one point idempotent.
func (g *Grid) ApplyStamp(st Stamp, x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sw, sh := st.Size()
	for sy := 0; sy < sh; sy++ {
		gy := y - st.anchorY + sy
		if gy < 0 || gy >= g.h {
			continue
		}
		for sx := 0; sx < sw; sx++ {
			gx := x - st.anchorX + sx
			if gx < 0 || gx >= g.w {
				continue
			}
			g.cur[g.idx(gx, gy)] = st.At(sx, sy)
		}
	}
}
