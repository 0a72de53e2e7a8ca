package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChatMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    ChatQuery
	}{
		{
			name:    "defaults",
			message: "추천해줘",
			want:    ChatQuery{Days: 1, MaxPlacesPerDay: 3, StartTime: "09:00"},
		},
		{
			name:    "nights and days with area",
			message: "커플 2박3일 서귀포 동쪽 코스 추천해줘",
			want: ChatQuery{
				Tags:            []string{"커플"},
				RegionPattern:   "성산|표선|남원",
				RegionLabel:     "서귀포 동쪽(성산 일대)",
				Days:            3,
				MaxPlacesPerDay: 4,
				StartTime:       "09:00",
			},
		},
		{
			name:    "days clamp to five",
			message: "가족이랑 7일 여행",
			want:    ChatQuery{Tags: []string{"가족여행"}, Days: 5, MaxPlacesPerDay: 4, StartTime: "09:00"},
		},
		{
			name:    "same day wins over counted days",
			message: "3일 말고 당일 애월 바다",
			want: ChatQuery{
				Tags:            []string{"자연"},
				RegionPattern:   "애월",
				RegionLabel:     "애월 일대",
				Days:            1,
				MaxPlacesPerDay: 3,
				StartTime:       "09:00",
			},
		},
		{
			name:    "late start",
			message: "점심 먹고 오후에 출발",
			want:    ChatQuery{Days: 1, MaxPlacesPerDay: 3, StartTime: "11:00"},
		},
		{
			name:    "early start beats late start",
			message: "일출 보고 오후까지",
			want:    ChatQuery{Days: 1, MaxPlacesPerDay: 3, StartTime: "07:00"},
		},
		{
			name:    "quadrant before town",
			message: "제주 서쪽 한림 쪽 힐링",
			want: ChatQuery{
				Tags:            []string{"휴식"},
				RegionPattern:   "애월|한림|협재|한경|이호|도두",
				RegionLabel:     "제주시 서쪽(애월·한림·협재 일대)",
				Days:            1,
				MaxPlacesPerDay: 3,
				StartTime:       "09:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChatMessage(tt.message))
		})
	}
}
