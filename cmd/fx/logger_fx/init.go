package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"jejutrip/internal/config"
	"jejutrip/internal/logger"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	log = log.With(
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
