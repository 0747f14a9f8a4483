package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/Gthulhu/scenario-controller/rest"
	"github.com/Gthulhu/scenario-controller/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewControllerApp wires the scenario controller with its REST status server
func NewControllerApp(cfg config.ControllerConfig) (*fx.App, error) {
	adapterModule, err := AdapterModule()
	if err != nil {
		return nil, err
	}
	return newControllerApp(cfg, adapterModule)
}

func newControllerApp(cfg config.ControllerConfig, adapterModule fx.Option, extra ...fx.Option) (*fx.App, error) {
	repoModule, err := RepoModule(cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	serviceModule, err := ServiceModule(adapterModule, repoModule)
	if err != nil {
		return nil, err
	}

	handlerModule, err := HandlerModule(serviceModule)
	if err != nil {
		return nil, err
	}

	opts := []fx.Option{
		ConfigModule(cfg),
		handlerModule,
		fx.NopLogger,
		fx.Invoke(StartRestApp),
		fx.Invoke(StartScenarioController),
	}
	return fx.New(append(opts, extra...)...), nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})
	return nil
}

// StartScenarioController runs the watch loop for the lifetime of the app.
// Stopping the app stops every executor.
func StartScenarioController(lc fx.Lifecycle, ctrl *service.ScenarioController) error {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				if err := ctrl.Run(runCtx); err != nil {
					logger.Logger(runCtx).Error().Err(err).Msg("scenario controller exited")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
				logger.Logger(ctx).Info().Msg("scenario controller stopped")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return nil
}
