package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func AddConfigPathFlag(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config-path", "", "Path to the directory with config file")
	return viper.BindPFlag("config-path", cmd.PersistentFlags().Lookup("config-path"))
}
