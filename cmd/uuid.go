package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// uuidCmd represents the uuid command
var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print reproducible version 4 UUIDs",
	Long: `Print version 4 UUIDs whose random bits come from the stream, so a fixed seed repeats them. For example:
  mtrand uuid -n 3 --seed=5489`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if uuidCount < 0 {
			return fmt.Errorf("invalid --count: %d", uuidCount)
		}
		g := newGenerator()
		for i := 0; i < uuidCount; i++ {
			id, err := uuid.NewRandomFromReader(g)
			if err != nil {
				return fmt.Errorf("uuid: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
		}
		return nil
	},
}

var uuidCount int

func init() {
	rootCmd.AddCommand(uuidCmd)

	flags := uuidCmd.Flags()
	flags.IntVarP(&uuidCount, "count", "n", 1, "number of UUIDs")
}
