package mt

// Init fills the buffer with N draws from src. A nil src means HostEntropy.
func (g *Generator) Init(src Entropy) {
	if src == nil {
		src = HostEntropy()
	}
	for i := range g.mt {
		g.mt[i] = src.Uint32()
	}
	g.reset()
}

// InitFrom fills the buffer with the next N outputs of seeder. The seeder is
// advanced by exactly N draws and is otherwise untouched. A nil seeder falls
// back to Init(nil).
func (g *Generator) InitFrom(seeder *Generator) {
	if seeder == nil {
		g.Init(nil)
		return
	}
	for i := range g.mt {
		g.mt[i] = seeder.Uint32()
	}
	g.reset()
}

// SeedUint32 applies the reference init_genrand initializer.
func (g *Generator) SeedUint32(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < N; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.reset()
}

// SeedKey applies the reference init_by_array initializer. An empty key is
// treated as a single zero word.
func (g *Generator) SeedKey(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	g.SeedUint32(19650218)
	mt := &g.mt

	i, j := 1, 0
	k := N
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		mt[i] = (mt[i] ^ ((mt[i-1] ^ (mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= N {
			mt[0] = mt[N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		mt[i] = (mt[i] ^ ((mt[i-1] ^ (mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			mt[0] = mt[N-1]
			i = 1
		}
	}
	mt[0] = upperMask
	g.mti = N
}

// Seed implements rand.Source. The key is the low word of seed followed by
// the high word when it is non-zero, so non-negative seeds give the same
// stream as CPython's random.seed.
func (g *Generator) Seed(seed int64) {
	u := uint64(seed)
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	g.SeedKey(key)
}

// New create a new Generator. Without options it is filled from HostEntropy.
func New(opts ...Option) *Generator {
	opt := newOptions(opts...)
	g := &Generator{}
	switch {
	case opt.seeder != nil:
		g.InitFrom(opt.seeder)
	case opt.key != nil:
		g.SeedKey(opt.key)
	case opt.hasSeed:
		g.SeedUint32(opt.seed)
	default:
		g.Init(opt.entropy)
	}
	return g
}

// NewFrom create a new Generator chained from seeder, see InitFrom.
func NewFrom(seeder *Generator) *Generator {
	g := &Generator{}
	g.InitFrom(seeder)
	return g
}

// Split derives k generators chained in order from g, one per worker.
func (g *Generator) Split(k int) []*Generator {
	if k <= 0 {
		return nil
	}
	gs := make([]*Generator, k)
	for i := range gs {
		gs[i] = NewFrom(g)
	}
	return gs
}
