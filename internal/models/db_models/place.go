package db_models

import (
	"strings"
	"unicode"

	"github.com/lib/pq"

	"jejutrip/internal/planner"
)

// Place is a row of the places table backing the postgres catalog source.
type Place struct {
	BaseModel
	ExternalID   string `gorm:"index"`
	Name         string `gorm:"not null"`
	Category     string
	Address      string
	Tags         pq.StringArray `gorm:"type:text[]"`
	Description  string
	OpeningHours string
	Phone        string
	PriceInfo    string
	ThumbnailURL string
	Latitude     *float64
	Longitude    *float64
	SortOrder    int `gorm:"index"`
}

func (Place) TableName() string {
	return "places"
}

// ToRaw flattens the row into the planner's input shape. Tags are joined
// with spaces so they tokenize like the CSV keyword column.
func (p Place) ToRaw() planner.RawPlace {
	externalID := p.ExternalID
	if externalID == "" {
		externalID = p.ID.String()
	}
	return planner.RawPlace{
		ExternalID:   externalID,
		Name:         p.Name,
		Category:     p.Category,
		Address:      p.Address,
		Tags:         strings.Join(p.Tags, " "),
		Description:  p.Description,
		OpeningHours: p.OpeningHours,
		Phone:        p.Phone,
		PriceInfo:    p.PriceInfo,
		ThumbnailURL: p.ThumbnailURL,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}
}

// PlaceFromRaw is the inverse of ToRaw, used when importing a CSV catalog.
func PlaceFromRaw(r planner.RawPlace, order int) Place {
	return Place{
		ExternalID:   r.ExternalID,
		Name:         r.Name,
		Category:     r.Category,
		Address:      r.Address,
		Tags:         pq.StringArray(splitTags(r.Tags)),
		Description:  r.Description,
		OpeningHours: r.OpeningHours,
		Phone:        r.Phone,
		PriceInfo:    r.PriceInfo,
		ThumbnailURL: r.ThumbnailURL,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		SortOrder:    order,
	}
}

func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
