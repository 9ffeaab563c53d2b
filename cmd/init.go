package cmd

import (
	"github.com/spf13/afero"

	"gitlab.com/nunet/sample-store/cmd/backend"
)

var (
	utilsService      = &backend.Configured{}
	fileSystemService = afero.NewOsFs()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a config file")

	// initialize top level commands
	rootCmd.AddCommand(NewServeCmd(openConfiguredStore))
	rootCmd.AddCommand(NewSampleCmd(utilsService))
	rootCmd.AddCommand(NewSnapshotCmd(openPersistentStore, fileSystemService))
	rootCmd.AddCommand(versionCmd)
}
