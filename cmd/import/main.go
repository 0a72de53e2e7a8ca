package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"jejutrip/internal/config"
	"jejutrip/internal/infra"
	"jejutrip/internal/logger"
	"jejutrip/internal/models/db_models"
	"jejutrip/internal/planner"
	"jejutrip/internal/repositories"
	"jejutrip/pkg/utils"
)

func main() {
	csvPath := flag.String("csv", "", "Path to the places CSV (defaults to catalog.csv_path)")
	migrate := flag.Bool("migrate", true, "Create or update the places table before importing")
	dryRun := flag.Bool("dry-run", false, "Parse and validate the CSV without touching the database")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall import timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	path := cfg.Catalog.CSVPath
	if *csvPath != "" {
		path = *csvPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, log, path, *migrate, *dryRun); err != nil {
		log.Error("import failed", zap.String("csv", path), zap.Error(err))
		cancel()
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, path string, migrate, dryRun bool) error {
	raws, err := repositories.NewCSVPlaceSource(path).LoadPlaces(ctx)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	// Same checks the server runs when it builds the catalog at startup.
	catalog, err := planner.NewCatalog(raws, planner.DefaultTables())
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}
	log.Info("csv parsed",
		zap.String("csv", path),
		zap.Int("places", catalog.Len()),
	)
	if dryRun {
		return nil
	}

	db, err := infra.InitPostgresql(cfg.Database.Postgres, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	if migrate {
		if err := infra.Migrate(db, &db_models.Place{}); err != nil {
			return err
		}
	}

	rows := make([]db_models.Place, len(raws))
	for i, r := range raws {
		rows[i] = db_models.PlaceFromRaw(r, i)
	}

	repo := repositories.NewPlaceRepository(db)
	if err := repo.ReplaceAll(ctx, rows); err != nil {
		return err
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	log.Info("places imported",
		zap.Int64("rows", count),
		zap.String("finished_at", utils.FormatDisplayKST(time.Now())),
	)
	return nil
}
