package planner

import (
	"errors"
	"fmt"
)

var ErrEmptyCatalog = errors.New("catalog has no places")

// Catalog is the classified, indexed set of places. It is built once and
// only read afterwards, so it is safe to share between goroutines.
type Catalog struct {
	places     []Place
	classifier *Classifier
	index      *Index
}

func NewCatalog(rows []RawPlace, tables *Tables) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}

	classifier := NewClassifier(tables.NamedAreas, rows)
	places := make([]Place, len(rows))
	corpus := make([]string, len(rows))

	for i, r := range rows {
		p := Place{
			ID:           i,
			ExternalID:   r.ExternalID,
			Name:         r.Name,
			CategoryRaw:  r.Category,
			Category:     MapCategory(r.Category, tables),
			Address:      r.Address,
			City:         CityOf(r.Address),
			Zone:         classifier.Classify(r.Address, r.Longitude),
			Tags:         r.Tags,
			Description:  r.Description,
			OpeningHours: r.OpeningHours,
			Phone:        r.Phone,
			PriceInfo:    r.PriceInfo,
			ThumbnailURL: r.ThumbnailURL,
			SearchText:   r.Tags + " " + r.Description,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
		}
		places[i] = p
		corpus[i] = p.SearchText
	}

	index, err := FitIndex(corpus)
	if err != nil {
		return nil, fmt.Errorf("fit search index: %w", err)
	}

	return &Catalog{places: places, classifier: classifier, index: index}, nil
}

func (c *Catalog) Len() int { return len(c.places) }

func (c *Catalog) Place(id int) (*Place, bool) {
	if id < 0 || id >= len(c.places) {
		return nil, false
	}
	return &c.places[id], true
}

// Places returns the backing slice; callers must not modify it.
func (c *Catalog) Places() []Place { return c.places }

// PlaceFilter narrows a catalog listing. Empty fields match everything.
type PlaceFilter struct {
	Category Category
	Zone     Zone
}

func (f PlaceFilter) match(p *Place) bool {
	return (f.Category == "" || p.Category == f.Category) && (f.Zone == "" || p.Zone == f.Zone)
}

// Page returns a 1-based page of the places matching f in catalog order,
// along with the total number of matches.
func (c *Catalog) Page(f PlaceFilter, page, pageSize int) ([]*Place, int) {
	var matched []*Place
	for i := range c.places {
		if f.match(&c.places[i]) {
			matched = append(matched, &c.places[i])
		}
	}
	if page < 1 || pageSize < 1 {
		return nil, len(matched)
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, len(matched)
	}
	end := min(start+pageSize, len(matched))
	return matched[start:end], len(matched)
}

func (c *Catalog) Median(city City) float64 { return c.classifier.Median(city) }

func (c *Catalog) Index() *Index { return c.index }
