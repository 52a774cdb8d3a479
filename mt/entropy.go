package mt

import "math/rand"

// Entropy supplies the raw words used to fill a buffer. *rand.Rand satisfies it.
type Entropy interface {
	Uint32() uint32
}

// EntropyFunc adapts a plain function to Entropy.
type EntropyFunc func() uint32

// Uint32 implements Entropy.
func (f EntropyFunc) Uint32() uint32 {
	return f()
}

// HostEntropy returns the process-level source: the top-level math/rand
// functions. It is only as reproducible as that source is.
func HostEntropy() Entropy {
	return EntropyFunc(rand.Uint32)
}

// NewSeededEntropy returns a math/rand source seeded with seed, for callers
// that want entropy seeding to be repeatable.
func NewSeededEntropy(seed int64) Entropy {
	return rand.New(rand.NewSource(seed))
}
