package flags

import (
	"github.com/spf13/cobra"
)

var theme string

func AddThemeFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "Color theme to play with. Overrides the saved setting.")
	cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"ocean", "tropical", "gold", "hill", "starlight", "crayon", "fuse"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func Theme() string {
	return theme
}
