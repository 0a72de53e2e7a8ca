package repositories

import (
	"context"

	"jejutrip/internal/planner"
)

// PlaceSource yields the raw catalog rows in their stable order. The row
// order becomes the place id and the tie-break for every later sort.
type PlaceSource interface {
	LoadPlaces(ctx context.Context) ([]planner.RawPlace, error)
}
