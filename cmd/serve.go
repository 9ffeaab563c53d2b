package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.com/nunet/sample-store/api"
	"gitlab.com/nunet/sample-store/internal"
	"gitlab.com/nunet/sample-store/internal/background_tasks"
	"gitlab.com/nunet/sample-store/internal/config"
	"gitlab.com/nunet/sample-store/internal/logger"
	"gitlab.com/nunet/sample-store/internal/tracing"
	"gitlab.com/nunet/sample-store/service"
	"gitlab.com/nunet/sample-store/snapshot"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the sample store REST server",
		Long:  `Open the configured store and serve the REST API until SIGINT or SIGTERM is received.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := internal.ShutdownContext(cmd.Context())
			defer cancel()

			listener, err := net.Listen("tcp", restAddr(config.GetConfig().Rest))
			if err != nil {
				return fmt.Errorf("could not listen: %w", err)
			}
			return serve(ctx, listener, open, fileSystemService)
		},
	}
}

func restAddr(rest config.Rest) string {
	return fmt.Sprintf("%s:%d", rest.Addr, rest.Port)
}

// serve runs the REST server on listener until ctx is cancelled, then stops
// the server, the scheduler, the store and the tracer in that order.
func serve(ctx context.Context, listener net.Listener, open storeOpener, fs afero.Fs) (err error) {
	zlog := logger.New("cmd")
	cfg := config.GetConfig()

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		listener.Close()
		return fmt.Errorf("could not initialize tracing: %w", err)
	}
	defer func() {
		err = multierr.Append(err, shutdownTracer(context.Background()))
	}()

	repo, closeStore, err := open()
	if err != nil {
		listener.Close()
		return fmt.Errorf("could not open store: %w", err)
	}
	defer func() {
		err = multierr.Append(err, closeStore())
	}()

	scheduler := background_tasks.NewScheduler(1)
	if cfg.Snapshot.Enabled {
		task, err := snapshot.NewTask(fs, repo, cfg.Snapshot)
		if err != nil {
			listener.Close()
			return err
		}
		scheduler.AddTask(task)
		zlog.Info("snapshots scheduled", zap.String("schedule", cfg.Snapshot.Schedule), zap.String("dir", cfg.Snapshot.Dir))
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := api.SetupRouter(api.NewSampleHandler(service.NewSampleService(repo)))
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zlog.Info("serving REST API", zap.String("addr", listener.Addr().String()))
		serveErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	zlog.Info("server stopped")
	return nil
}
