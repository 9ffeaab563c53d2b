package cmd

import (
	"github.com/spf13/cobra"

	"gitlab.com/nunet/sample-store/docs"
	"gitlab.com/nunet/sample-store/internal/config"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:     "samplestore",
	Short:   "Sample Store",
	Long:    `The Sample Store Command Line Interface (CLI)`,
	Version: docs.SwaggerInfo.Version,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: false,
		HiddenDefaultCmd:  true,
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig == "" {
			return nil
		}
		return config.LoadConfigFile(flagConfig)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	// CheckErr prints formatted error message, if there is any, and exits
	cobra.CheckErr(rootCmd.Execute())
}
