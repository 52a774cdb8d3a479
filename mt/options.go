package mt

// Options holds how New seeds a Generator.
type Options struct {
	entropy Entropy
	seeder  *Generator
	key     []uint32
	seed    uint32
	hasSeed bool
}

// Option configures New.
type Option func(opts *Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.entropy == nil {
		opt.entropy = HostEntropy()
	}

	return opt
}

// WithEntropy seeds from N draws of src.
func WithEntropy(src Entropy) Option {
	return func(opts *Options) {
		opts.entropy = src
	}
}

// WithSeeder chains from another generator. Takes precedence over all other options.
func WithSeeder(seeder *Generator) Option {
	return func(opts *Options) {
		opts.seeder = seeder
	}
}

// WithSeed seeds with init_genrand.
func WithSeed(seed uint32) Option {
	return func(opts *Options) {
		opts.seed = seed
		opts.hasSeed = true
	}
}

// WithKey seeds with init_by_array. Takes precedence over WithSeed.
func WithKey(key []uint32) Option {
	return func(opts *Options) {
		opts.key = append([]uint32{}, key...)
	}
}
