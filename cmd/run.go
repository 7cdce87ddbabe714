package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gthulhu/kanagawa/app"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the control loop until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runEngine,
	}
}

func runEngine(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engineApp, err := app.NewEngineApp(cfg, afero.NewOsFs())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engineApp.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	logger.Logger(ctx).Info().Msg("signal received, shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return engineApp.Stop(stopCtx)
}
