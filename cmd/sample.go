package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tutils/mtrand/sample"
)

// sampleCmd groups the estimator draws
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw estimator samples",
}

var paretoCmd = &cobra.Command{
	Use:   "pareto",
	Short: "Print continuous power-law variates",
	Long: `Print variates with density proportional to x^-alpha on [xmin, inf). For example:
  mtrand sample pareto -n 5 --xmin=1 --alpha=2.5 --seed=5489`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sampleCount < 0 {
			return fmt.Errorf("invalid --count: %d", sampleCount)
		}
		g := newGenerator()
		w := bufio.NewWriter(cmd.OutOrStdout())
		for i := 0; i < sampleCount; i++ {
			x, err := sample.Pareto(g, paretoXmin, paretoAlpha)
			if err != nil {
				return err
			}
			w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			w.WriteByte('\n')
		}
		return w.Flush()
	},
}

var permCmd = &cobra.Command{
	Use:   "perm",
	Short: "Print a random permutation of [0, n)",
	Long: `Print a random visiting order of n vertices, one per line. For example:
  mtrand sample perm -n 10 --seed=42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sampleCount < 0 {
			return fmt.Errorf("invalid --count: %d", sampleCount)
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, v := range sample.Perm(newGenerator(), sampleCount) {
			w.WriteString(strconv.Itoa(v))
			w.WriteByte('\n')
		}
		return w.Flush()
	},
}

var (
	sampleCount int
	paretoXmin  float64
	paretoAlpha float64
)

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.AddCommand(paretoCmd, permCmd)

	sampleCmd.PersistentFlags().IntVarP(&sampleCount, "count", "n", 10, "number of values")

	flags := paretoCmd.Flags()
	flags.Float64Var(&paretoXmin, "xmin", 1, "lower bound of the power law")
	flags.Float64Var(&paretoAlpha, "alpha", 2.5, "exponent of the power law")
}
