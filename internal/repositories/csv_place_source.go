package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"jejutrip/internal/planner"
)

var ErrMissingNameColumn = errors.New("csv: missing name column")

// csvColumns lists the accepted header spellings for each field, first match
// wins.
var csvColumns = map[string][]string{
	"id":           {"id", "external_id"},
	"name":         {"name"},
	"category":     {"category", "type"},
	"address":      {"address"},
	"tags":         {"tags", "keywords"},
	"description":  {"descriptionshort", "description"},
	"openingHours": {"openinghours", "opening_hours"},
	"phone":        {"phone"},
	"priceInfo":    {"priceinfo", "price_info"},
	"thumbnail":    {"thumbnailurl", "thumbnail_url", "thumbnail"},
	"lat":          {"lat", "latitude"},
	"lng":          {"lng", "lon", "longitude"},
}

type csvPlaceSource struct {
	path string
}

func NewCSVPlaceSource(path string) PlaceSource {
	return &csvPlaceSource{path: path}
}

func (s *csvPlaceSource) LoadPlaces(ctx context.Context) ([]planner.RawPlace, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	return ReadPlacesCSV(ctx, f)
}

// ReadPlacesCSV parses a header-first CSV into raw places. Missing optional
// columns read as empty strings; unparsable coordinates read as absent.
func ReadPlacesCSV(ctx context.Context, r io.Reader) ([]planner.RawPlace, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := resolveColumns(header)
	if _, ok := cols["name"]; !ok {
		return nil, ErrMissingNameColumn
	}

	var rows []planner.RawPlace
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		field := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rows = append(rows, planner.RawPlace{
			ExternalID:   field("id"),
			Name:         field("name"),
			Category:     field("category"),
			Address:      field("address"),
			Tags:         field("tags"),
			Description:  field("description"),
			OpeningHours: field("openingHours"),
			Phone:        field("phone"),
			PriceInfo:    field("priceInfo"),
			ThumbnailURL: field("thumbnail"),
			Latitude:     parseCoordinate(field("lat")),
			Longitude:    parseCoordinate(field("lng")),
		})
	}
	return rows, nil
}

func resolveColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make(map[string]int, len(csvColumns))
	for key, aliases := range csvColumns {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				cols[key] = i
				break
			}
		}
	}
	return cols
}

// parseCoordinate reads NaN and Inf cells as absent, like empty ones.
func parseCoordinate(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
