package config_fx

import (
	"go.uber.org/fx"

	"jejutrip/internal/config"
)

// Module exposes the config sections individual constructors depend on.
// The root *config.Config is supplied by main.
var Module = fx.Provide(
	providePlannerConfig, providePostgresConfig)

func providePlannerConfig(cfg *config.Config) config.PlannerConfig {
	return cfg.Planner
}

func providePostgresConfig(cfg *config.Config) config.PostgresConfig {
	return cfg.Database.Postgres
}
