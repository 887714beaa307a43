package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall-cli/internal"
	"github.com/blockfall/blockfall-cli/internal/settings"
	"github.com/blockfall/blockfall-cli/internal/tetris"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesSetCmd)
}

var themesCmd = &cobra.Command{
	Use:               "themes",
	Short:             "List the available color themes",
	Args:              cobra.ExactArgs(0),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		saved := ""
		if config, err := settings.ReadSettings(); err == nil {
			saved = config.GetTheme()
		}

		headerFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
		tbl := table.New("THEME", "COLORS", "SAVED")
		tbl.WithHeaderFormatter(headerFmt)
		for _, p := range tetris.Palettes {
			colors := make([]string, tetris.PaletteSize)
			for i := range colors {
				colors[i] = string(p.Color(i))
			}
			marker := ""
			if p.Name() == saved {
				marker = "*"
			}
			tbl.AddRow(p.Name(), strings.Join(colors, " "), marker)
		}
		tbl.Print()
		return nil
	},
}

var themesSetCmd = &cobra.Command{
	Use:   "set theme-name",
	Short: "Save a theme as the default for future games",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(tetris.Palettes))
		for i, p := range tetris.Palettes {
			names[i] = p.Name()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		name := args[0]
		if _, ok := tetris.PaletteByName(name); !ok {
			return fmt.Errorf("unknown theme %s. List themes using %s", internal.Emph(name), internal.Emph("blockfall themes"))
		}
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("could not read local config: %w", err)
		}
		if err := config.SetTheme(name); err != nil {
			return fmt.Errorf("could not save theme: %w", err)
		}
		fmt.Printf("Theme %s saved.\n", internal.Emph(name))
		return nil
	},
}
