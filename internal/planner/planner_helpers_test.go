package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func attraction(name, address, tags string) RawPlace {
	return RawPlace{Name: name, Category: "attraction", Address: address, Tags: tags}
}

func food(name, address, tags string) RawPlace {
	return RawPlace{Name: name, Category: "restaurant", Address: address, Tags: tags}
}

func stay(name, address, tags string) RawPlace {
	return RawPlace{Name: name, Category: "펜션", Address: address, Tags: tags}
}

func newTestEngine(t *testing.T, rows []RawPlace) *Engine {
	t.Helper()
	tables := DefaultTables()
	catalog, err := NewCatalog(rows, tables)
	require.NoError(t, err)
	return NewEngine(catalog, tables)
}

func stopNames(day DayPlan) []string {
	names := make([]string, 0, len(day.Stops))
	for _, s := range day.Stops {
		names = append(names, s.Place.Name)
	}
	return names
}

func stopCategories(day DayPlan) []Category {
	cats := make([]Category, 0, len(day.Stops))
	for _, s := range day.Stops {
		cats = append(cats, s.Category)
	}
	return cats
}

const (
	jocheon  = "제주특별자치도 제주시 조천읍 교래리"
	hamdeok  = "제주특별자치도 제주시 조천읍 함덕리"
	aewol    = "제주특별자치도 제주시 애월읍 곽지리"
	hallim   = "제주특별자치도 제주시 한림읍 협재리"
	seongsan = "제주특별자치도 서귀포시 성산읍 고성리"
)
