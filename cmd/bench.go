package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/mtrand/counter/period"
)

const benchBatch = 4096

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure draws per second",
	Long: `Run one chained generator per worker and report draws per second. For example:
  mtrand bench --workers=4 --duration=3s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchWorkers <= 0 {
			return fmt.Errorf("invalid --workers: %d", benchWorkers)
		}
		if benchDuration <= 0 {
			return fmt.Errorf("invalid --duration: %s", benchDuration)
		}

		gens := newGenerator().Split(benchWorkers)
		draws := period.NewPeriodCounter(time.Second)
		sinks := make([]uint32, len(gens))

		ctx, cancel := context.WithTimeout(cmd.Context(), benchDuration)
		defer cancel()

		var wg sync.WaitGroup
		for i, g := range gens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var sink uint32
				for ctx.Err() == nil {
					for j := 0; j < benchBatch; j++ {
						sink ^= g.Uint32()
					}
					draws.Add(benchBatch)
				}
				sinks[i] = sink
			}()
		}

		start := time.Now()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
				logger.Info().Int64("draws", draws.Value()).Int64("per_sec", draws.RatePerSec()).Msg("bench")
			}
		}
		wg.Wait()

		elapsed := time.Since(start)
		total := draws.Value()
		fmt.Fprintf(cmd.OutOrStdout(), "workers=%d draws=%d elapsed=%s rate=%.0f/s\n",
			len(gens), total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
		logger.Trace().Interface("sinks", sinks).Send()
		return nil
	},
}

var (
	benchWorkers  int
	benchDuration time.Duration
)

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.IntVarP(&benchWorkers, "workers", "w", 1, "number of goroutines, each with its own generator")
	flags.DurationVarP(&benchDuration, "duration", "d", 3*time.Second, "how long to run")
}
