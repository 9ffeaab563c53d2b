package snapshot

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/internal/background_tasks"
	"gitlab.com/nunet/sample-store/internal/config"
)

// NewTask returns a background task that writes a snapshot into cfg.Dir on
// cfg.Schedule and prunes old snapshots down to cfg.Keep.
func NewTask(fs afero.Fs, repo repositories.SampleRepository, cfg config.Snapshot) (*background_tasks.Task, error) {
	if _, err := background_tasks.ParseCron(cfg.Schedule); err != nil {
		return nil, errors.Wrapf(err, "invalid snapshot schedule %q", cfg.Schedule)
	}

	return &background_tasks.Task{
		Name:        "snapshot",
		Description: "Writes a compressed snapshot of the sample store",
		Triggers:    []background_tasks.Trigger{&background_tasks.PeriodicTrigger{CronExpr: cfg.Schedule}},
		Function: func(ctx context.Context) error {
			return Run(ctx, fs, repo, cfg.Dir, cfg.Keep)
		},
	}, nil
}

// Run writes one snapshot into dir and prunes the directory to keep files.
func Run(ctx context.Context, fs afero.Fs, repo repositories.SampleRepository, dir string, keep int) error {
	if _, _, err := ExportFile(ctx, fs, repo, dir); err != nil {
		return err
	}

	removed, err := Prune(fs, dir, keep)
	if len(removed) > 0 {
		zlog.Info("pruned snapshots", zap.Strings("removed", removed))
	}
	return err
}
