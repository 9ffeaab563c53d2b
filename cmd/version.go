package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/sample-store/docs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the Sample Store version",
	Long:  `This command prints the version of the Sample Store.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Sample Store Version: %s\n", docs.SwaggerInfo.Version)
	},
}
