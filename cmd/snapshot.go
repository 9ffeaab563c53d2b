package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"gitlab.com/nunet/sample-store/internal/config"
	"gitlab.com/nunet/sample-store/snapshot"
)

func NewSnapshotCmd(open storeOpener, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export or import the configured store",
		Long:  `Export or import the configured store directly, without going through a running server.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.AddCommand(NewSnapshotExportCmd(open, fs))
	cmd.AddCommand(NewSnapshotImportCmd(open, fs))

	return cmd
}

func NewSnapshotExportCmd(open storeOpener, fs afero.Fs) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every sample into a compressed snapshot file",
		Long:  `Write every sample into a compressed snapshot file. Without --out the file is created in the configured snapshot directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			repo, closeStore, err := open()
			if err != nil {
				return fmt.Errorf("could not open store: %w", err)
			}
			defer func() {
				err = multierr.Append(err, closeStore())
			}()

			var n int
			path := out
			if path == "" {
				path, n, err = snapshot.ExportFile(cmd.Context(), fs, repo, config.GetConfig().Snapshot.Dir)
			} else {
				n, err = snapshot.WriteFile(cmd.Context(), fs, repo, path)
			}
			if err != nil {
				return fmt.Errorf("could not export samples: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", pluralSamples(int64(n)), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot file to write")

	return cmd
}

func NewSnapshotImportCmd(open storeOpener, fs afero.Fs) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Insert every sample of a snapshot file into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			repo, closeStore, err := open()
			if err != nil {
				return fmt.Errorf("could not open store: %w", err)
			}
			defer func() {
				err = multierr.Append(err, closeStore())
			}()

			n, err := snapshot.ImportFile(cmd.Context(), fs, repo, in)
			if err != nil {
				return fmt.Errorf("imported %s before failing: %w", pluralSamples(int64(n)), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s\n", pluralSamples(int64(n)), in)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "snapshot file to read")
	cmd.MarkFlagRequired("in")

	return cmd
}
