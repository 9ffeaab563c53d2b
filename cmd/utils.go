package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"gitlab.com/nunet/sample-store/db"
	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/internal/config"
	"gitlab.com/nunet/sample-store/models"
)

// storeOpener opens the sample store and returns it with its closer
type storeOpener func() (repositories.SampleRepository, func() error, error)

// openConfiguredStore opens the store selected by the loaded config
func openConfiguredStore() (repositories.SampleRepository, func() error, error) {
	cfg := config.GetConfig()
	return db.NewSampleRepository(cfg.DB, cfg.General.DataDir)
}

var errMemoryStore = errors.New("the memory driver keeps no records between runs, configure sqlite or clover")

// openPersistentStore is openConfiguredStore for commands whose result must
// outlive the process
func openPersistentStore() (repositories.SampleRepository, func() error, error) {
	if config.GetConfig().DB.Driver == db.DriverMemory {
		return nil, nil, errMemoryStore
	}
	return openConfiguredStore()
}

func setupSampleTable(writer io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)

	table.SetHeader([]string{"ID", "Name", "Description", "Created"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func sampleRow(sample models.Sample) []string {
	return []string{sample.ID, sample.Name, sample.Description, humanize.Time(sample.CreatedAt)}
}

// getSampleList unmarshal response body from API request into a sample slice
func getSampleList(body []byte) ([]models.Sample, error) {
	var samples []models.Sample
	err := json.Unmarshal(body, &samples)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal response body: %w", err)
	}

	return samples, nil
}

func pluralSamples(n int64) string {
	if n == 1 {
		return "1 sample"
	}
	return humanize.Comma(n) + " samples"
}
