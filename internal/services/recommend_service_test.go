package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jejutrip/internal/models/request_models"
	"jejutrip/internal/models/response_models"
	"jejutrip/pkg/utils"
)

func itemNames(d response_models.DayPlan) []string {
	out := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Name)
	}
	return out
}

func itemLabels(d response_models.DayPlan) []string {
	out := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Category)
	}
	return out
}

func TestRecommend_Ordered(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Tags:            []string{"자연"},
		Days:            intPtr(1),
		MaxPlacesPerDay: intPtr(2),
	})
	require.NoError(t, err)

	_, err = uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, "ordered", resp.Strategy)
	assert.Equal(t, []string{"자연"}, resp.MergedTags)
	assert.False(t, resp.FallbackApplied)

	require.Len(t, resp.Days, 1)
	day := resp.Days[0]
	assert.Equal(t, []string{"비자림", "고기국수집", "박물관", "바다펜션"}, itemNames(day))
	assert.Equal(t, []string{"관광", "식사", "관광", "숙소"}, itemLabels(day))
	assert.Empty(t, day.StartTime)
	assert.Nil(t, day.TotalTravelHours)

	first := day.Items[0]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 1, first.OrderInDay)
	assert.Equal(t, 2, first.PlaceID)
	assert.Equal(t, "place", first.CategoryCode)
	assert.Equal(t, "제주시", first.RegionCity)
	assert.Equal(t, "제주 동", first.Subregion)
	assert.Equal(t, "jeju_east", first.Zone)
	assert.Greater(t, first.Similarity, 0.0)
	assert.Empty(t, first.VisitStart)
	assert.Nil(t, first.TravelHours)

	for i, it := range day.Items {
		assert.Equal(t, i+1, it.OrderInDay)
	}
}

func TestRecommend_Timed(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Tags:            []string{"자연"},
		Days:            intPtr(1),
		MaxPlacesPerDay: intPtr(2),
		Strategy:        "timed",
		StartTime:       "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "timed", resp.Strategy)

	require.Len(t, resp.Days, 1)
	day := resp.Days[0]
	// The 12 hour stay would leave past the budget plus grace.
	assert.Equal(t, []string{"비자림", "고기국수집", "박물관"}, itemNames(day))
	assert.Equal(t, "10:30", day.StartTime)
	assert.Equal(t, "16:30", day.EndTime)
	require.NotNil(t, day.TotalTravelHours)
	assert.InDelta(t, 2.5, *day.TotalTravelHours, 1e-9)
	require.NotNil(t, day.TotalStayHours)
	assert.InDelta(t, 4.0, *day.TotalStayHours, 1e-9)

	want := [][2]string{{"10:30", "12:00"}, {"13:00", "14:00"}, {"15:00", "16:30"}}
	for i, it := range day.Items {
		assert.Equal(t, want[i][0], it.VisitStart, it.Name)
		assert.Equal(t, want[i][1], it.VisitEnd, it.Name)
	}
	require.NotNil(t, day.Items[0].TravelHours)
	assert.InDelta(t, 0.5, *day.Items[0].TravelHours, 1e-9)
}

func TestRecommend_SubregionFilter(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Tags:       []string{"자연"},
		Subregions: []string{"제주 서"},
	})
	require.NoError(t, err)
	assert.False(t, resp.FallbackApplied)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, []string{"협재해변", "고기국수집", "바다펜션"}, itemNames(resp.Days[0]))
}

func TestRecommend_RegionFallback(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Tags:   []string{"자연"},
		Region: "부산",
	})
	require.NoError(t, err)
	assert.True(t, resp.FallbackApplied)
	require.Len(t, resp.Days, 1)
	assert.Len(t, resp.Days[0].Items, 5, "three attractions plus food and stay")
}

func TestRecommend_EmptyQuery(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.NotNil(t, resp.Days)
	assert.NotNil(t, resp.MergedTags)
}

func TestRecommend_InvalidInput(t *testing.T) {
	svc := newTestRecommendService(t)

	tests := []struct {
		name string
		req  request_models.RecommendRequest
	}{
		{"zero days", request_models.RecommendRequest{Days: intPtr(0)}},
		{"too many days", request_models.RecommendRequest{Days: intPtr(11)}},
		{"zero per day", request_models.RecommendRequest{MaxPlacesPerDay: intPtr(0)}},
		{"too many per day", request_models.RecommendRequest{MaxPlacesPerDay: intPtr(11)}},
		{"unknown strategy", request_models.RecommendRequest{Strategy: "fastest"}},
		{"unknown subregion", request_models.RecommendRequest{Subregions: []string{"한라산"}}},
		{"negative hours", request_models.RecommendRequest{DailyHours: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recommend(context.Background(), tt.req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestRecommend_CatalogUnavailable(t *testing.T) {
	svc := NewRecommendService(nil, testPlannerConfig(), zap.NewNop())

	_, err := svc.Recommend(context.Background(), request_models.RecommendRequest{Tags: []string{"자연"}})
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestRecommend_CancelledContext(t *testing.T) {
	svc := newTestRecommendService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, request_models.RecommendRequest{Tags: []string{"자연"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendText(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.RecommendText(context.Background(), request_models.RecommendTextRequest{
		Query: "제주 서쪽 2박3일 바다 여행",
	})
	require.NoError(t, err)

	assert.Equal(t, "제주 서쪽 2박3일 바다 여행", resp.Parsed.Original)
	assert.Equal(t, 3, resp.Parsed.Days)
	assert.Equal(t, []string{"자연"}, resp.Parsed.Tags)
	assert.Nil(t, resp.Parsed.RegionAddress)
	assert.Equal(t, []string{"제주 서", "서귀포 서"}, resp.Parsed.RegionSubregions)

	require.Len(t, resp.Itinerary.Days, 1, "only one west attraction exists")
	assert.Equal(t, []string{"협재해변", "고기국수집", "바다펜션"}, itemNames(resp.Itinerary.Days[0]))
	assert.Contains(t, resp.Message, "3일 일정 · 자연 분위기")
	assert.Contains(t, resp.Message, "1일차 : 협재해변(관광) → 고기국수집(식사) → 바다펜션(숙소)")
}

func TestRecommendText_AddressRegion(t *testing.T) {
	svc := newTestRecommendService(t)

	resp, err := svc.RecommendText(context.Background(), request_models.RecommendTextRequest{
		Query: "성산 일출 보러 당일치기",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed.RegionAddress)
	assert.Equal(t, "성산", *resp.Parsed.RegionAddress)
	assert.Nil(t, resp.Parsed.RegionSubregions)
	require.Len(t, resp.Itinerary.Days, 1)
	assert.Equal(t, "성산일출봉", resp.Itinerary.Days[0].Items[0].Name)
}

func TestRecommendText_EmptyQuery(t *testing.T) {
	svc := newTestRecommendService(t)

	_, err := svc.RecommendText(context.Background(), request_models.RecommendTextRequest{Query: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRecommend_EqualRequestsPlannedIndependently(t *testing.T) {
	svc := newTestRecommendService(t)
	req := request_models.RecommendRequest{Tags: []string{"자연"}, MaxPlacesPerDay: intPtr(2)}

	first, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Equal(t, first.Days, second.Days)
	// Responses do not share backing arrays.
	require.NotEmpty(t, first.Days)
	first.Days[0].Items[0].Name = "changed"
	assert.NotEqual(t, "changed", second.Days[0].Items[0].Name)
}
