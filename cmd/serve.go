package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	intakeService "casedesk/internal/intake/service"
	workspaceService "casedesk/internal/workspace/service"
	"casedesk/internal/workspace/store"
	"casedesk/pkg/logger"
	"casedesk/router"
	"casedesk/socket"

	"github.com/spf13/cobra"
)

const (
	draftSweepInterval = 5 * time.Minute
	draftMaxAge        = 2 * time.Hour
	shutdownTimeout    = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		seed, err := loadSeed(ctx, cfg.Seed)
		if err != nil {
			return err
		}

		st := store.New(seed...)
		hub := socket.NewHub(st.List)
		go hub.Run(ctx)

		workspaces := workspaceService.NewWorkspaceService(st, hub)
		intake := intakeService.NewIntakeService(workspaces, intakeService.StubSummariser{})
		go intake.ExpireWorker(ctx, draftSweepInterval, draftMaxAge)

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router.Setup(cfg, workspaces, intake, hub),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Sugar.Infof("casedesk listening on %s", cfg.Addr())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Sugar.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
