package mt

import (
	"encoding/binary"
	"io"
	"math/rand"
)

var _ rand.Source = (*Generator)(nil)
var _ rand.Source64 = (*Generator)(nil)
var _ io.Reader = (*Generator)(nil)

// Uint64 implements rand.Source64. Two draws, the first in the high word.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// Int63 implements rand.Source.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Read fills p with little-endian draws, one per four bytes. A trailing
// partial word still consumes a whole draw. It never returns an error.
func (g *Generator) Read(p []byte) (n int, err error) {
	for len(p[n:]) >= 4 {
		binary.LittleEndian.PutUint32(p[n:], g.Uint32())
		n += 4
	}
	if rest := len(p) - n; rest > 0 {
		var w [4]byte
		binary.LittleEndian.PutUint32(w[:], g.Uint32())
		n += copy(p[n:], w[:rest])
	}
	return n, nil
}

// Uint32n returns an unbiased value in [0, n). It panics if n == 0.
func (g *Generator) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("mt: invalid argument to Uint32n")
	}
	v := uint64(g.Uint32()) * uint64(n)
	low := uint32(v)
	if low < n {
		thresh := -n % n
		for low < thresh {
			v = uint64(g.Uint32()) * uint64(n)
			low = uint32(v)
		}
	}
	return uint32(v >> 32)
}
