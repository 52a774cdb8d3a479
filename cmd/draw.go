package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print values from one stream",
	Long: `Print 32-bit values, or uniform values in [0, 1), from one stream. For example:
  mtrand draw -n 10 --seed=5489
  mtrand draw -n 3 --uniform --entropy-seed=816559`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if drawCount < 0 {
			return fmt.Errorf("invalid --count: %d", drawCount)
		}
		g := newGenerator()
		w := bufio.NewWriter(cmd.OutOrStdout())
		for i := 0; i < drawCount; i++ {
			var b []byte
			switch {
			case drawUniform:
				b = strconv.AppendFloat(w.AvailableBuffer(), g.Float64(), 'g', -1, 64)
			case drawHex:
				b = fmt.Appendf(w.AvailableBuffer(), "%08x", g.Uint32())
			default:
				b = strconv.AppendUint(w.AvailableBuffer(), uint64(g.Uint32()), 10)
			}
			w.Write(append(b, '\n'))
		}
		return w.Flush()
	},
}

var (
	drawCount   int
	drawUniform bool
	drawHex     bool
)

func init() {
	rootCmd.AddCommand(drawCmd)

	flags := drawCmd.Flags()
	flags.IntVarP(&drawCount, "count", "n", 10, "number of values")
	flags.BoolVarP(&drawUniform, "uniform", "u", false, "print uniform values in [0, 1)")
	flags.BoolVarP(&drawHex, "hex", "x", false, "print 32-bit values in hex")

	drawCmd.MarkFlagsMutuallyExclusive("uniform", "hex")
}
