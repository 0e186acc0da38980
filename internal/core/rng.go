package core

import "math/rand/v2"

// BitSource produces a deterministic stream of single random bits. It is used
// to inject noise at the grid borders, so reproducibility for a fixed seed
// matters more than statistical quality.
type BitSource struct {
	r *rand.Rand
}

// NewBitSource creates a bit stream seeded with the provided value. There is
// deliberately no seedless constructor.
func NewBitSource(seed int64) *BitSource {
	return &BitSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Value returns the next bit as 0 or 1, advancing the internal state.
func (b *BitSource) Value() uint8 {
	return uint8(b.r.IntN(2))
}

// FillBinary fills the buffer with 0/1 values drawn from the source.
func (b *BitSource) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = b.Value()
	}
}
