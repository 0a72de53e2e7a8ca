package services

import (
	"slices"
	"strconv"
	"strings"
)

const (
	maxChatDays       = 5
	defaultChatStart  = "09:00"
	lateChatStart     = "11:00"
	earlyChatStart    = "07:00"
	chatPlacesPerDay  = 3
	chatLongTripDays  = 3
	chatLongTripPlace = 4
)

var chatTagKeywords = []keywordValue{
	{"커플", "커플"}, {"데이트", "커플"}, {"신혼", "커플"}, {"허니문", "커플"}, {"부부", "커플"},
	{"가족", "가족여행"}, {"아이", "가족여행"}, {"키즈", "가족여행"}, {"애들", "가족여행"},
	{"혼자", "혼자"}, {"혼행", "혼자"},
	{"힐링", "휴식"}, {"쉬고", "휴식"}, {"휴식", "휴식"}, {"카페", "휴식"}, {"카공", "휴식"},
	{"바다", "자연"}, {"해변", "자연"}, {"해수욕장", "자연"},
	{"오션뷰", "오션뷰"},
	{"뷰맛집", "사진"}, {"사진", "사진"}, {"포토", "사진"}, {"인생샷", "사진"},
	{"오름", "자연"}, {"산", "자연"}, {"숲", "자연"},
	{"흑돼지", "흑돼지"}, {"고기국수", "고기국수"}, {"해산물", "해산물"}, {"회", "해산물"},
	{"향토음식", "제주향토음식"},
}

type chatArea struct {
	keyword string
	pattern string
	label   string
}

// First match wins, so broader quadrant phrases precede single towns.
var chatAreas = []chatArea{
	{"제주 서쪽", "애월|한림|협재|한경|이호|도두", "제주시 서쪽(애월·한림·협재 일대)"},
	{"애월", "애월", "애월 일대"},
	{"한림", "한림|협재", "한림·협재 일대"},
	{"제주 동쪽", "조천|함덕|구좌|김녕|세화|월정|평대|우도", "제주시 동쪽(함덕·구좌 일대)"},
	{"중문", "중문|안덕|대정|모슬포|화순", "중문·안덕 일대(서귀포 서쪽)"},
	{"서귀포 서쪽", "중문|안덕|대정|모슬포|화순", "서귀포 서쪽(중문 일대)"},
	{"성산", "성산|표선|남원", "성산·표선 일대(서귀포 동쪽)"},
	{"서귀포 동쪽", "성산|표선|남원", "서귀포 동쪽(성산 일대)"},
	{"제주시", "제주시", "제주시 전역"},
	{"서귀포시", "서귀포시", "서귀포시 전역"},
}

// ChatQuery is what the chat endpoint understood from a message.
type ChatQuery struct {
	Tags            []string
	RegionPattern   string
	RegionLabel     string
	Days            int
	MaxPlacesPerDay int
	StartTime       string
}

func ParseChatMessage(message string) ChatQuery {
	msg := strings.TrimSpace(message)
	q := ChatQuery{Days: 1, StartTime: defaultChatStart}

	if m := nightsDaysRe.FindStringSubmatch(msg); m != nil {
		q.Days = clampChatDays(m[2])
	} else if m := daysRe.FindStringSubmatch(msg); m != nil {
		q.Days = clampChatDays(m[1])
	}
	if strings.Contains(msg, "당일") || strings.Contains(msg, "원데이") {
		q.Days = 1
	}

	for _, kw := range chatTagKeywords {
		if strings.Contains(msg, kw.keyword) && !slices.Contains(q.Tags, kw.value) {
			q.Tags = append(q.Tags, kw.value)
		}
	}

	for _, a := range chatAreas {
		if strings.Contains(msg, a.keyword) {
			q.RegionPattern = a.pattern
			q.RegionLabel = a.label
			break
		}
	}

	if strings.Contains(msg, "오후") || strings.Contains(msg, "늦게") || strings.Contains(msg, "점심") {
		q.StartTime = lateChatStart
	}
	if strings.Contains(msg, "아침 일찍") || strings.Contains(msg, "일출") {
		q.StartTime = earlyChatStart
	}

	q.MaxPlacesPerDay = chatPlacesPerDay
	if q.Days >= chatLongTripDays {
		q.MaxPlacesPerDay = chatLongTripPlace
	}
	return q
}

func clampChatDays(s string) int {
	d, _ := strconv.Atoi(s)
	return max(1, min(d, maxChatDays))
}
