package planner

import (
	"math"
	"sort"
	"strings"
)

// DefaultMedianLongitude splits a city into east and west when none of its
// places carry a longitude.
const DefaultMedianLongitude = 126.6

// Classifier assigns places to zones. Medians are computed once from the
// rows it was built with and never change afterwards.
type Classifier struct {
	areas   []NamedArea
	medians map[City]float64
}

func NewClassifier(areas []NamedArea, rows []RawPlace) *Classifier {
	byCity := map[City][]float64{}
	for _, r := range rows {
		if !finite(r.Longitude) {
			continue
		}
		city := CityOf(r.Address)
		byCity[city] = append(byCity[city], *r.Longitude)
	}

	medians := map[City]float64{
		CityJeju:     DefaultMedianLongitude,
		CitySeogwipo: DefaultMedianLongitude,
	}
	for city := range medians {
		if lngs := byCity[city]; len(lngs) > 0 {
			medians[city] = median(lngs)
		}
	}

	return &Classifier{areas: areas, medians: medians}
}

func (c *Classifier) Median(city City) float64 {
	if m, ok := c.medians[city]; ok {
		return m
	}
	return DefaultMedianLongitude
}

// Classify resolves a zone: named areas in the address first, then the
// city's east zone when longitude is unknown, then a median longitude split.
func (c *Classifier) Classify(address string, longitude *float64) Zone {
	for _, a := range c.areas {
		if strings.Contains(address, a.Name) {
			return a.Zone
		}
	}

	city := CityOf(address)
	if city == CityOther {
		return ZoneOther
	}

	if !finite(longitude) {
		if city == CityJeju {
			return ZoneJejuEast
		}
		return ZoneSeogwipoEast
	}

	east := *longitude >= c.Median(city)
	switch {
	case city == CityJeju && east:
		return ZoneJejuEast
	case city == CityJeju:
		return ZoneJejuWest
	case east:
		return ZoneSeogwipoEast
	default:
		return ZoneSeogwipoWest
	}
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
