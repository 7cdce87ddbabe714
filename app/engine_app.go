package app

import (
	"context"
	"net/http"

	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/Gthulhu/kanagawa/rest"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// NewEngineApp wires the control loop, and the status server when server.host is set.
func NewEngineApp(cfg config.EngineConfig, fs afero.Fs) (*fx.App, error) {
	serviceModule, err := ServiceModule(cfg, fs)
	if err != nil {
		return nil, err
	}

	handlerModule, err := HandlerModule(serviceModule)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		fx.NopLogger,
		handlerModule,
		fx.Invoke(StartControlLoop),
		fx.Invoke(StartRestApp),
	)
	return app, app.Err()
}

// StartControlLoop runs the service's control loop for the lifetime of the app.
func StartControlLoop(lc fx.Lifecycle, svc domain.Service) error {
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				if err := svc.Run(loopCtx); err != nil {
					logger.Logger(loopCtx).Error().Err(err).Msg("control loop exited")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	if cfg.Host == "" {
		return nil
	}
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Logger(ctx).Info().Msgf("starting status server on %s", cfg.Host)
				if err := engine.Start(cfg.Host); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Error().Err(err).Msgf("start status server fail on %s", cfg.Host)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down status server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}
