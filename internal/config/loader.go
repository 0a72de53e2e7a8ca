package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"jejutrip/internal/planner"
)

var defaultConfigPaths = []string{"./configs", "../configs", "../../configs", "."}

// Load reads configs/config.yaml, merges config.<environment>.yaml on top
// and lets environment variables override any key ("planner.max_days" is
// PLANNER_MAX_DAYS).
func Load() (*Config, error) {
	return LoadFrom(defaultConfigPaths...)
}

func LoadFrom(paths ...string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName("config." + v.GetString("app.environment"))
	_ = v.MergeInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideFromLegacyEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "jejutrip")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.gin_mode", "release")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("catalog.source", CatalogSourceCSV)
	v.SetDefault("catalog.csv_path", "data/places.csv")

	v.SetDefault("database.postgres.url", "")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "jejutrip")
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.postgres.max_connections", 10)
	v.SetDefault("database.postgres.max_idle", 2)

	v.SetDefault("planner.strategy", string(planner.StrategyOrdered))
	v.SetDefault("planner.default_days", 1)
	v.SetDefault("planner.default_max_places_per_day", 3)
	v.SetDefault("planner.max_days", 10)
	v.SetDefault("planner.max_places_per_day_limit", 10)
	v.SetDefault("planner.start_time", "09:00")
	v.SetDefault("planner.daily_hours", planner.DefaultDailyHours)
}

// loadEnvFile loads the first .env found from the working directory up to
// the module root. A missing file is not an error.
func loadEnvFile() {
	candidates := []string{".env", "../.env", "../../.env"}
	if root := findProjectRoot(); root != "" {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// overrideFromLegacyEnv honours the plain PORT and POSTGRES_URL variables
// used by existing deployments.
func overrideFromLegacyEnv(cfg *Config) {
	if cfg.Database.Postgres.URL == "" {
		if val := os.Getenv("POSTGRES_URL"); val != "" {
			cfg.Database.Postgres.URL = val
		}
	}
	if val := os.Getenv("PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil && port > 0 {
			cfg.App.Port = port
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return fmt.Errorf("app.port %d is out of range", cfg.App.Port)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch cfg.Catalog.Source {
	case CatalogSourceCSV:
		if cfg.Catalog.CSVPath == "" {
			return fmt.Errorf("catalog.csv_path is required for the csv source")
		}
	case CatalogSourcePostgres:
		pg := cfg.Database.Postgres
		if pg.URL == "" && (pg.Host == "" || pg.Database == "" || pg.User == "") {
			return fmt.Errorf("database.postgres.url or host, database and user are required for the postgres source")
		}
	default:
		return fmt.Errorf("catalog.source %q is not one of csv, postgres", cfg.Catalog.Source)
	}

	p := cfg.Planner
	if _, ok := planner.ParseStrategy(p.Strategy); !ok {
		return fmt.Errorf("planner.strategy %q is not one of ordered, timed", p.Strategy)
	}
	if p.MaxDays < 1 || p.MaxPlacesPerDayLimit < 1 {
		return fmt.Errorf("planner.max_days and planner.max_places_per_day_limit must be positive")
	}
	if p.DefaultDays < 1 || p.DefaultDays > p.MaxDays {
		return fmt.Errorf("planner.default_days must be between 1 and %d", p.MaxDays)
	}
	if p.DefaultMaxPlacesPerDay < 1 || p.DefaultMaxPlacesPerDay > p.MaxPlacesPerDayLimit {
		return fmt.Errorf("planner.default_max_places_per_day must be between 1 and %d", p.MaxPlacesPerDayLimit)
	}
	if _, err := planner.ParseClock(p.StartTime); err != nil {
		return fmt.Errorf("planner.start_time: %w", err)
	}
	if p.DailyHours <= 0 || p.DailyHours > 24 {
		return fmt.Errorf("planner.daily_hours must be in (0, 24]")
	}
	return nil
}
