package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// set by Execute when the command line can be replayed
	replayToken string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mtrand",
	Short: "Reproducible Mersenne Twister streams.",
	Long: `Reproducible Mersenne Twister (MT19937) streams.
Repo: https://github.com/tutils/mtrand
Draw, derive and benchmark seeded streams, For example:
  mtrand draw -n 5 --seed=5489
  mtrand derive --streams=4 -n 3 --seed=42
  mtrand uuid -n 2 --entropy-seed=816559`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logInit(viper.GetString("log-level")); err != nil {
			return err
		}
		if replayToken != "" {
			logger.Info().Str("replay", replayToken).Msg("command line")
		}
		return nil
	},
}

const (
	prefix = "@"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	args := os.Args[1:]
	if len(args) == 1 && strings.HasPrefix(args[0], prefix) {
		decoded, err := decodeCmdline(args[0][len(prefix):])
		if err != nil {
			logger.Error().Err(err).Msg("replay")
			os.Exit(1)
		}
		args = decoded
	} else if len(args) >= 1 {
		if s, err := encodeCmdline(args); err == nil {
			replayToken = prefix + s
		}
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Send()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mtrand.yaml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error, quiet")
	flags.Uint32P("seed", "s", 0, "seed the generator with init_genrand")
	flags.Int64P("entropy-seed", "e", 0, "fill the generator from a math/rand source seeded with this value")

	rootCmd.MarkFlagsMutuallyExclusive("seed", "entropy-seed")

	for _, name := range []string{"log-level", "seed", "entropy-seed"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logger.Error().Err(err).Msg("home directory")
			os.Exit(1)
		}

		// Search config in home directory with name ".mtrand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".mtrand")
	}

	viper.SetEnvPrefix("mtrand")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}
