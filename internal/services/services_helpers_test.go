package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jejutrip/internal/config"
	"jejutrip/internal/planner"
)

const (
	jocheon  = "제주특별자치도 제주시 조천읍 교래리"
	hamdeok  = "제주특별자치도 제주시 조천읍 함덕리"
	aewol    = "제주특별자치도 제주시 애월읍 곽지리"
	hallim   = "제주특별자치도 제주시 한림읍 협재리"
	seongsan = "제주특별자치도 서귀포시 성산읍 고성리"
)

func testRows() []planner.RawPlace {
	lng := 126.94
	return []planner.RawPlace{
		{Name: "성산일출봉", Category: "관광지", Address: seongsan, Tags: "자연 오름 일출 바다", Longitude: &lng},
		{Name: "협재해변", Category: "관광지", Address: hallim, Tags: "자연 바다 해변 사진"},
		{Name: "비자림", Category: "관광지", Address: jocheon, Tags: "자연 숲 산책"},
		{Name: "고기국수집", Category: "restaurant", Address: aewol, Tags: "고기국수 맛집"},
		{Name: "바다펜션", Category: "펜션", Address: hallim, Tags: "휴식 오션뷰 숙소"},
		{Name: "박물관", Category: "관광지", Address: hamdeok, Tags: "문화 박물관 전시"},
	}
}

func testPlannerConfig() config.PlannerConfig {
	return config.PlannerConfig{
		Strategy:               "ordered",
		DefaultDays:            1,
		DefaultMaxPlacesPerDay: 3,
		MaxDays:                10,
		MaxPlacesPerDayLimit:   10,
		StartTime:              "09:00",
		DailyHours:             10,
	}
}

func newTestCatalog(t *testing.T) (*planner.Catalog, *planner.Tables) {
	t.Helper()
	tables := planner.DefaultTables()
	catalog, err := planner.NewCatalog(testRows(), tables)
	require.NoError(t, err)
	return catalog, tables
}

func newTestRecommendService(t *testing.T) RecommendServiceInterface {
	t.Helper()
	catalog, tables := newTestCatalog(t)
	return NewRecommendService(planner.NewEngine(catalog, tables), testPlannerConfig(), zap.NewNop())
}

func intPtr(v int) *int { return &v }
