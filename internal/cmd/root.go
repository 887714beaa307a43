package cmd

import (
	_ "embed"
	"os"

	"github.com/blockfall/blockfall-cli/internal/flags"
	"github.com/spf13/cobra"
)

//go:embed version.txt
var version string

var rootCmd = &cobra.Command{
	Use:     "blockfall",
	Version: version,
	Long:    "Blockfall CLI",
}

func init() {
	cobra.CheckErr(flags.AddConfigPathFlag(rootCmd))
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
