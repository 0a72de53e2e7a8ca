package planner

import "strings"

type Category string

const (
	CategoryAttraction Category = "place"
	CategoryFood       Category = "food"
	CategoryStay       Category = "stay"
)

type City string

const (
	CityJeju     City = "jeju_city"
	CitySeogwipo City = "seogwipo_city"
	CityOther    City = "other"
)

type Zone string

const (
	ZoneJejuEast     Zone = "jeju_east"
	ZoneJejuWest     Zone = "jeju_west"
	ZoneSeogwipoEast Zone = "seogwipo_east"
	ZoneSeogwipoWest Zone = "seogwipo_west"
	ZoneOther        Zone = "other"
)

// Zones lists every known zone in rank order.
var Zones = []Zone{ZoneJejuEast, ZoneJejuWest, ZoneSeogwipoEast, ZoneSeogwipoWest, ZoneOther}

var zoneAliases = map[string]Zone{
	"제주 동":  ZoneJejuEast,
	"제주 서":  ZoneJejuWest,
	"서귀포 동": ZoneSeogwipoEast,
	"서귀포 서": ZoneSeogwipoWest,
	"기타":    ZoneOther,
}

// ParseZone accepts either the zone code or the Korean quadrant label.
func ParseZone(s string) (Zone, bool) {
	s = strings.TrimSpace(s)
	for _, z := range Zones {
		if string(z) == s {
			return z, true
		}
	}
	z, ok := zoneAliases[s]
	return z, ok
}

// RawPlace is one catalog row as delivered by a place source, before
// classification. Missing text columns are empty strings and missing
// coordinates are nil.
type RawPlace struct {
	ExternalID   string
	Name         string
	Category     string
	Address      string
	Tags         string
	Description  string
	OpeningHours string
	Phone        string
	PriceInfo    string
	ThumbnailURL string
	Latitude     *float64
	Longitude    *float64
}

// Place is an immutable, classified catalog entry.
type Place struct {
	ID           int
	ExternalID   string
	Name         string
	CategoryRaw  string
	Category     Category
	Address      string
	City         City
	Zone         Zone
	Tags         string
	Description  string
	OpeningHours string
	Phone        string
	PriceInfo    string
	ThumbnailURL string
	SearchText   string
	Latitude     *float64
	Longitude    *float64
}

// MapCategory folds a free-form category string into one of the three
// internal categories. Exact codes win over keyword matches; food keywords
// are checked before stay keywords and everything else is an attraction.
func MapCategory(raw string, t *Tables) Category {
	c := strings.ToLower(strings.TrimSpace(raw))
	switch c {
	case "attraction":
		return CategoryAttraction
	case "food":
		return CategoryFood
	case "stay":
		return CategoryStay
	}
	for _, k := range t.FoodKeywords {
		if strings.Contains(c, k) {
			return CategoryFood
		}
	}
	for _, k := range t.StayKeywords {
		if strings.Contains(c, k) {
			return CategoryStay
		}
	}
	return CategoryAttraction
}

func CityOf(address string) City {
	switch {
	case strings.Contains(address, "제주시"):
		return CityJeju
	case strings.Contains(address, "서귀포시"):
		return CitySeogwipo
	default:
		return CityOther
	}
}

var (
	categoryLabels = map[Category]string{
		CategoryAttraction: "관광",
		CategoryFood:       "식사",
		CategoryStay:       "숙소",
	}
	cityLabels = map[City]string{
		CityJeju:     "제주시",
		CitySeogwipo: "서귀포시",
	}
)

// Label is the display name shown next to a stop. Anything outside the
// three itinerary categories reads as 기타.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "기타"
}

func (c City) Label() string {
	if l, ok := cityLabels[c]; ok {
		return l
	}
	return "기타"
}

func (z Zone) Label() string {
	for label, zone := range zoneAliases {
		if zone == z {
			return label
		}
	}
	return "기타"
}
