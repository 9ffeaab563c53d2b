package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"

	"gitlab.com/nunet/sample-store/cmd/backend"
)

func NewSampleCmd(utilsService backend.Utility) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Manage samples on a running sample store",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.AddCommand(NewSampleAddCmd(utilsService))
	cmd.AddCommand(NewSampleListCmd(utilsService))
	cmd.AddCommand(NewSampleDeleteCmd(utilsService))

	return cmd
}

func NewSampleAddCmd(utilsService backend.Utility) *cobra.Command {
	var id, name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new sample",
		Long:  `Store a new sample. When --id is omitted the server generates one.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.Marshal(map[string]string{
				"id":          id,
				"name":        name,
				"description": description,
			})
			if err != nil {
				return fmt.Errorf("unable to marshal JSON data: %w", err)
			}

			body, err := utilsService.ResponseBody(cmd.Context(), "POST", "/api/v1/samples", data)
			if err != nil {
				return fmt.Errorf("could not add sample: %w", err)
			}

			storedID, err := jsonparser.GetString(body, "id")
			if err != nil {
				return fmt.Errorf("failed to get 'id' parameter from json response: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored sample %s\n", storedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "sample id")
	cmd.Flags().StringVarP(&name, "name", "n", "", "sample name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "sample description")
	cmd.MarkFlagRequired("name")

	return cmd
}

func NewSampleListCmd(utilsService backend.Utility) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Display table of stored samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := utilsService.ResponseBody(cmd.Context(), "GET", "/api/v1/samples", nil)
			if err != nil {
				return fmt.Errorf("could not list samples: %w", err)
			}

			samples, err := getSampleList(body)
			if err != nil {
				return err
			}

			if len(samples) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No samples stored")
				return nil
			}

			table := setupSampleTable(cmd.OutOrStdout())
			for _, sample := range samples {
				table.Append(sampleRow(sample))
			}
			table.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", pluralSamples(int64(len(samples))))
			return nil
		},
	}
}

func NewSampleDeleteCmd(utilsService backend.Utility) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete every sample with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := "/api/v1/samples/" + url.PathEscape(args[0])
			body, err := utilsService.ResponseBody(cmd.Context(), "DELETE", endpoint, nil)
			if err != nil {
				return fmt.Errorf("could not delete sample: %w", err)
			}

			deleted, err := jsonparser.GetInt(body, "deleted")
			if err != nil {
				return fmt.Errorf("failed to get 'deleted' parameter from json response: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", pluralSamples(deleted))
			return nil
		},
	}
}
