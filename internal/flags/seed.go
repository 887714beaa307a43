package flags

import (
	"github.com/spf13/cobra"
)

var seed int64

func AddSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the piece generator. The same seed deals the same pieces.")
}

func Seed() (int64, bool) {
	return seed, seed != 0
}
