// Package mt implements the 32-bit Mersenne Twister (MT19937).
//
// A Generator owns a 624-word state buffer and a cursor. Every call to
// Uint32 advances it in place; once the buffer is consumed it is regenerated
// by the twist recurrence. A Generator is not safe for concurrent use: give
// each goroutine its own, e.g. via Split.
package mt

const (
	// N is the number of 32-bit words in the state buffer.
	N = 624
	m = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// MaxUint32 is the largest value Uint32 can return.
	MaxUint32 = 0xffffffff
)

// Generator is a MT19937 state. The zero value is not seeded; construct one
// with New or NewFrom, or call Init/InitFrom/SeedUint32/SeedKey before use.
type Generator struct {
	mt  [N]uint32
	mti int // N means the buffer must be regenerated before the next draw
}

// twist regenerates the whole buffer and rewinds the cursor.
func (g *Generator) twist() {
	mt := &g.mt
	var y uint32
	i := 0
	for ; i < N-m; i++ {
		y = (mt[i] & upperMask) | (mt[i+1] & lowerMask)
		mt[i] = mt[i+m] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	for ; i < N-1; i++ {
		y = (mt[i] & upperMask) | (mt[i+1] & lowerMask)
		mt[i] = mt[i+m-N] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	y = (mt[N-1] & upperMask) | (mt[0] & lowerMask)
	mt[N-1] = mt[m-1] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	g.mti = 0
}

// Uint32 returns the next value of the sequence.
func (g *Generator) Uint32() uint32 {
	if g.mti >= N {
		g.twist()
	}
	y := g.mt[g.mti]
	g.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// Float64 returns a uniform value in [0, 1) built from one Uint32 draw.
// The resolution is 2^-32; 1.0 is never returned.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / (MaxUint32 + 1)
}

// Clone returns an independent copy of g. Both produce the same sequence
// from this point on.
func (g *Generator) Clone() *Generator {
	c := *g
	return &c
}

// reset marks a freshly written buffer as ready and repairs an all-zero state.
func (g *Generator) reset() {
	if g.mt[0]&upperMask == 0 {
		zero := true
		for _, w := range g.mt[1:] {
			if w != 0 {
				zero = false
				break
			}
		}
		if zero {
			g.mt[0] = upperMask
		}
	}
	g.mti = N
}
