package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/livenav/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize livenav configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure livenav for your project and writes the config file (.livenav.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
