package cmd

import (
	"github.com/spf13/viper"
	"github.com/tutils/mtrand/mt"
)

// newGenerator applies the seeding policy shared by all commands:
// --seed, then --entropy-seed, then host entropy.
func newGenerator() *mt.Generator {
	switch {
	case viper.IsSet("seed"):
		seed := viper.GetUint32("seed")
		logger.Debug().Uint32("seed", seed).Msg("seeding with init_genrand")
		return mt.New(mt.WithSeed(seed))
	case viper.IsSet("entropy-seed"):
		seed := viper.GetInt64("entropy-seed")
		logger.Debug().Int64("entropy_seed", seed).Msg("seeding from math/rand")
		return mt.New(mt.WithEntropy(mt.NewSeededEntropy(seed)))
	default:
		logger.Debug().Msg("seeding from host entropy")
		return mt.New(mt.WithEntropy(mt.HostEntropy()))
	}
}
