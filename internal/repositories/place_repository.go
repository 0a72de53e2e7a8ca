package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jejutrip/internal/models/db_models"
	"jejutrip/internal/planner"
	"jejutrip/pkg/utils"
)

type PlaceRepository interface {
	PlaceSource
	ListAll(ctx context.Context) ([]db_models.Place, error)
	ReplaceAll(ctx context.Context, places []db_models.Place) error
	Count(ctx context.Context) (int64, error)
}

type placeRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db, batchSize: 200}
}

func (r *placeRepository) ListAll(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list places: %w", utils.ErrDatabaseError, err)
	}
	return places, nil
}

func (r *placeRepository) LoadPlaces(ctx context.Context) ([]planner.RawPlace, error) {
	places, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]planner.RawPlace, len(places))
	for i, p := range places {
		rows[i] = p.ToRaw()
	}
	return rows, nil
}

// ReplaceAll swaps the whole table contents in one transaction so a running
// service never loads a half-imported catalog.
func (r *placeRepository) ReplaceAll(ctx context.Context, places []db_models.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(&db_models.Place{}).Error; err != nil {
			return fmt.Errorf("%w: clear places: %w", utils.ErrDatabaseError, err)
		}
		if len(places) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(places, r.batchSize).Error; err != nil {
			return fmt.Errorf("%w: insert places: %w", utils.ErrDatabaseError, err)
		}
		return nil
	})
}

func (r *placeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&db_models.Place{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count places: %w", utils.ErrDatabaseError, err)
	}
	return n, nil
}
