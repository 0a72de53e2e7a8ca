package response_models

import "jejutrip/internal/planner"

type Place struct {
	ID           int      `json:"id"`
	ExternalID   string   `json:"external_id,omitempty"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	CategoryCode string   `json:"category_code"`
	Address      string   `json:"address"`
	RegionCity   string   `json:"region_city"`
	Subregion    string   `json:"subregion"`
	Zone         string   `json:"zone"`
	Tags         string   `json:"tags"`
	Description  string   `json:"descriptionShort"`
	OpeningHours string   `json:"openingHours"`
	Phone        string   `json:"phone"`
	PriceInfo    string   `json:"priceInfo"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Latitude     *float64 `json:"lat"`
	Longitude    *float64 `json:"lng"`
}

type PlacePage struct {
	Items    []Place `json:"items"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int     `json:"total"`
}

type TagGroups struct {
	Base  []planner.TagChip `json:"base"`
	Stay  []planner.TagChip `json:"stay"`
	Food  []planner.TagChip `json:"food"`
	Extra []string          `json:"extra"`
}

type CatalogStats struct {
	Places     int                `json:"places"`
	ByCategory map[string]int     `json:"by_category"`
	ByZone     map[string]int     `json:"by_zone"`
	Medians    map[string]float64 `json:"median_longitudes"`
}
