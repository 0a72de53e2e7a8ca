package services

import (
	"context"
	"fmt"
	"strings"

	"jejutrip/internal/models/request_models"
	"jejutrip/internal/models/response_models"
	"jejutrip/internal/planner"
	"jejutrip/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id int) (response_models.Place, error)
	ListPlaces(ctx context.Context, req request_models.ListPlacesRequest) (response_models.PlacePage, error)
	Stats(ctx context.Context) (response_models.CatalogStats, error)
}

type PlaceService struct {
	catalog *planner.Catalog
}

func NewPlaceService(catalog *planner.Catalog) PlaceServiceInterface {
	return &PlaceService{catalog: catalog}
}

func (p *PlaceService) GetPlaceByID(ctx context.Context, id int) (response_models.Place, error) {
	if p.catalog == nil {
		return response_models.Place{}, utils.ErrCatalogUnavailable
	}
	place, ok := p.catalog.Place(id)
	if !ok {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toPlace(place), nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, req request_models.ListPlacesRequest) (response_models.PlacePage, error) {
	if p.catalog == nil {
		return response_models.PlacePage{}, utils.ErrCatalogUnavailable
	}
	if req.Page < 1 {
		return response_models.PlacePage{}, utils.ErrInvalidPage
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		return response_models.PlacePage{}, utils.ErrInvalidPageSize
	}

	filter := planner.PlaceFilter{}
	if c := strings.TrimSpace(req.Category); c != "" {
		switch cat := planner.Category(c); cat {
		case planner.CategoryAttraction, planner.CategoryFood, planner.CategoryStay:
			filter.Category = cat
		default:
			return response_models.PlacePage{}, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, c)
		}
	}
	if z := strings.TrimSpace(req.Zone); z != "" {
		zone, ok := planner.ParseZone(z)
		if !ok {
			return response_models.PlacePage{}, fmt.Errorf("%w: unknown zone %q", utils.ErrInvalidInput, z)
		}
		filter.Zone = zone
	}

	places, total := p.catalog.Page(filter, req.Page, req.PageSize)
	items := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		items = append(items, toPlace(place))
	}
	return response_models.PlacePage{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	}, nil
}

// Stats summarizes the loaded catalog, including the per-city median
// longitudes the zone split was made with.
func (p *PlaceService) Stats(ctx context.Context) (response_models.CatalogStats, error) {
	if p.catalog == nil {
		return response_models.CatalogStats{}, utils.ErrCatalogUnavailable
	}
	stats := response_models.CatalogStats{
		Places:     p.catalog.Len(),
		ByCategory: map[string]int{},
		ByZone:     map[string]int{},
		Medians: map[string]float64{
			string(planner.CityJeju):     p.catalog.Median(planner.CityJeju),
			string(planner.CitySeogwipo): p.catalog.Median(planner.CitySeogwipo),
		},
	}
	for _, place := range p.catalog.Places() {
		stats.ByCategory[string(place.Category)]++
		stats.ByZone[string(place.Zone)]++
	}
	return stats, nil
}
