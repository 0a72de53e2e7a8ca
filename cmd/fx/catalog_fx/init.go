package catalog_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jejutrip/internal/config"
	"jejutrip/internal/metrics"
	"jejutrip/internal/planner"
	"jejutrip/internal/repositories"
)

const loadTimeout = 30 * time.Second

var Module = fx.Provide(
	provideTables, provideCatalog, provideEngine)

// CSVSourceModule reads the catalog from the configured CSV file.
var CSVSourceModule = fx.Provide(
	provideCSVSource)

// PostgresSourceModule reads the catalog from the places table. It needs
// db_fx.Module alongside it.
var PostgresSourceModule = fx.Provide(
	providePlaceRepository, providePostgresSource)

func provideTables() *planner.Tables {
	return planner.DefaultTables()
}

func provideCSVSource(cfg *config.Config) repositories.PlaceSource {
	return repositories.NewCSVPlaceSource(cfg.Catalog.CSVPath)
}

func providePlaceRepository(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePostgresSource(repo repositories.PlaceRepository) repositories.PlaceSource {
	return repo
}

func provideCatalog(src repositories.PlaceSource, tables *planner.Tables, log *zap.Logger) (*planner.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	started := time.Now()
	rows, err := src.LoadPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog, err := planner.NewCatalog(rows, tables)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	counts := make(map[planner.Category]int)
	for _, p := range catalog.Places() {
		counts[p.Category]++
	}
	for _, c := range []planner.Category{planner.CategoryAttraction, planner.CategoryFood, planner.CategoryStay} {
		metrics.CatalogPlaces.WithLabelValues(string(c)).Set(float64(counts[c]))
	}

	log.Info("catalog loaded",
		zap.Int("places", catalog.Len()),
		zap.Int("attractions", counts[planner.CategoryAttraction]),
		zap.Int("food", counts[planner.CategoryFood]),
		zap.Int("stay", counts[planner.CategoryStay]),
		zap.Int("vocabulary", catalog.Index().VocabularySize()),
		zap.Float64("jeju_median_lng", catalog.Median(planner.CityJeju)),
		zap.Float64("seogwipo_median_lng", catalog.Median(planner.CitySeogwipo)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return catalog, nil
}

func provideEngine(catalog *planner.Catalog, tables *planner.Tables) *planner.Engine {
	return planner.NewEngine(catalog, tables)
}
