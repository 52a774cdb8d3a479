package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"github.com/tutils/mtrand"
)

// deriveCmd represents the derive command
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Chain independent streams from one master",
	Long: `Chain K generators from a master generator and draw from each one in its own goroutine.
Each output line is: stream, index, value. For example:
  mtrand derive --streams=4 -n 3 --seed=42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if deriveStreams <= 0 {
			return fmt.Errorf("invalid --streams: %d", deriveStreams)
		}
		if deriveCount < 0 {
			return fmt.Errorf("invalid --count: %d", deriveCount)
		}

		gens := newGenerator().Split(deriveStreams)
		sink := mtrand.NewSink(cmd.OutOrStdout())
		errs := make([]error, len(gens))

		var wg sync.WaitGroup
		for i, g := range gens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := sink.NewLineWriter()
				for j := 0; j < deriveCount; j++ {
					if _, errs[i] = fmt.Fprintf(w, "%d\t%d\t%d\n", i, j, g.Uint32()); errs[i] != nil {
						return
					}
				}
				errs[i] = w.Flush()
			}()
		}
		wg.Wait()

		logger.Debug().Int("streams", len(gens)).Int("count", deriveCount).Msg("derived")
		return errors.Join(errs...)
	},
}

var (
	deriveStreams int
	deriveCount   int
)

func init() {
	rootCmd.AddCommand(deriveCmd)

	flags := deriveCmd.Flags()
	flags.IntVarP(&deriveStreams, "streams", "k", 4, "number of chained streams")
	flags.IntVarP(&deriveCount, "count", "n", 10, "values per stream")
}
