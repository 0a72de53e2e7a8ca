package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jejutrip/internal/planner"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"3박4일 제주", 4},
		{"2박 3일 여행", 3},
		{"0박0일", 1},
		{"2박 여행", 3},
		{"4일 코스", 4},
		{"이틀 일정", 2},
		{"사흘 일정으로", 3},
		{"당일치기", 1},
		{"그냥 추천", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDays(tt.text))
		})
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		text      string
		wantAddr  string
		wantZones []planner.Zone
	}{
		{"애월 카페 투어", "애월", nil},
		{"서귀포 바다", "서귀포시", nil},
		{"제주시 맛집", "제주시", nil},
		{"서쪽 드라이브", "", []planner.Zone{planner.ZoneJejuWest, planner.ZoneSeogwipoWest}},
		{"동부 오름", "", []planner.Zone{planner.ZoneJejuEast, planner.ZoneSeogwipoEast}},
		{"성산 동쪽", "성산", nil},
		{"아무데나", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			addr, zones := parseRegion(tt.text)
			assert.Equal(t, tt.wantAddr, addr)
			assert.Equal(t, tt.wantZones, zones)
		})
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"커플", "자연"}, parseTags("연인이랑 데이트 바다 보러"))
	assert.Equal(t, []string{"맛집", "흑돼지"}, parseTags("흑돼지 맛집"))
	assert.Equal(t, []string{"자연"}, parseTags("추천해줘"))
}

func TestParseTextQuery(t *testing.T) {
	q := ParseTextQuery("  제주 서쪽 2박3일 커플 여행 ")

	assert.Equal(t, "  제주 서쪽 2박3일 커플 여행 ", q.Original)
	assert.Equal(t, q.Original, q.FreeText)
	assert.Equal(t, 3, q.Days)
	assert.Equal(t, []string{"커플"}, q.Tags)
	assert.Empty(t, q.RegionAddress)
	assert.Equal(t, []planner.Zone{planner.ZoneJejuWest, planner.ZoneSeogwipoWest}, q.Zones)
}
