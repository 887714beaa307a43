package flags

import (
	"github.com/spf13/cobra"
)

var level int

func AddLevelFlag(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&level, "level", "l", -1, "Level to start at. Overrides the saved setting.")
}

func Level() (int, bool) {
	return level, level >= 0
}
