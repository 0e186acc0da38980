package render

import (
	"image/color"

	"lifebox/internal/core"
)

// Buffer is the RGBA pixel buffer shared between the simulation loop (writer)
// and the presentation path (reader). It carries no lock of its own; the
// owner serializes access.
type Buffer struct {
	w, h int
	pix  []byte
}

// NewBuffer allocates a pixel buffer for a w*h grid.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, pix: make([]byte, 4*w*h)}
}

// Size returns the buffer dimensions in pixels.
func (b *Buffer) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Pix exposes the raw RGBA bytes in row-major order.
func (b *Buffer) Pix() []byte { return b.pix }

// Renderer maps binary cell data onto foreground/background colors.
type Renderer struct {
	on  [4]byte
	off [4]byte
}

// NewRenderer builds a renderer with the given alive/dead colors.
func NewRenderer(on, off color.Color) *Renderer {
	return &Renderer{on: rgba(on), off: rgba(off)}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Render writes one pixel per cell into dst. The caller holds whatever lock
// guards dst; the renderer takes none. A size mismatch between cells and dst
// (possible mid-resize) is skipped rather than clipped.
func (r *Renderer) Render(cells []uint8, dst *Buffer) {
	if dst == nil || len(cells) != dst.w*dst.h {
		return
	}
	for i, c := range cells {
		base := i * 4
		px := r.off
		if c != 0 {
			px = r.on
		}
		dst.pix[base+0] = px[0]
		dst.pix[base+1] = px[1]
		dst.pix[base+2] = px[2]
		dst.pix[base+3] = px[3]
	}
}
