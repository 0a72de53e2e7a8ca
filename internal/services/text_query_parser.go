package services

import (
	"regexp"
	"strconv"
	"strings"

	"jejutrip/internal/planner"
)

var (
	nightsDaysRe = regexp.MustCompile(`(\d+)\s*박\s*(\d+)\s*일`)
	nightsRe     = regexp.MustCompile(`(\d+)\s*박`)
	daysRe       = regexp.MustCompile(`(\d+)\s*일`)
)

type keywordValue struct {
	keyword string
	value   string
}

// Checked in order; the first numeral found alongside "일" decides.
var koreanDayNumerals = []struct {
	word string
	days int
}{
	{"한", 1}, {"하나", 1}, {"하루", 1},
	{"두", 2}, {"둘", 2}, {"이틀", 2},
	{"세", 3}, {"셋", 3}, {"사흘", 3},
	{"네", 4}, {"넷", 4},
}

// Specific areas win over the directional words below.
var textRegionKeywords = []keywordValue{
	{"제주시", "제주시"},
	{"서귀포", "서귀포시"},
	{"애월", "애월"},
	{"협재", "협재"},
	{"한림", "한림"},
	{"성산", "성산"},
	{"표선", "표선"},
	{"남원", "남원"},
	{"중문", "중문"},
	{"한경", "한경"},
	{"대정", "대정"},
	{"조천", "조천"},
	{"함덕", "함덕"},
	{"구좌", "구좌"},
	{"김녕", "김녕"},
	{"세화", "세화"},
	{"월정", "월정"},
	{"평대", "평대"},
	{"우도", "우도"},
}

var textTagKeywords = []keywordValue{
	{"커플", "커플"}, {"데이트", "커플"}, {"연인", "커플"}, {"허니문", "커플"},
	{"가족", "가족여행"}, {"아이", "가족여행"}, {"어린이", "가족여행"}, {"키즈", "가족여행"},
	{"자연", "자연"}, {"바다", "자연"}, {"해변", "자연"}, {"오름", "자연"}, {"드라이브", "자연"}, {"풍경", "자연"},
	{"힐링", "휴식"}, {"조용", "휴식"}, {"한적", "휴식"}, {"휴식", "휴식"}, {"여유", "휴식"},
	{"사진", "사진"}, {"인생샷", "사진"}, {"감성", "사진"},
	{"액티비티", "액티비티"}, {"체험", "액티비티"}, {"레저", "액티비티"}, {"서핑", "액티비티"},
	{"반려", "반려동물 동반"}, {"애견", "반려동물 동반"},
	{"럭셔리", "럭셔리"}, {"고급", "럭셔리"},
	{"오션뷰", "오션뷰"}, {"바다뷰", "오션뷰"},
	{"풀빌라", "풀빌라"},
	{"맛집", "맛집"}, {"먹방", "맛집"}, {"식도락", "맛집"}, {"카페", "맛집"},
	{"흑돼지", "흑돼지"}, {"고기국수", "고기국수"}, {"해산물", "해산물"}, {"회", "해산물"},
}

const defaultTextTag = "자연"

// TextQuery is a free-text request broken into engine inputs.
type TextQuery struct {
	Original      string
	Days          int
	Tags          []string
	RegionAddress string
	Zones         []planner.Zone
	FreeText      string
}

// ParseTextQuery reads trip length, region and mood tags out of a short
// Korean request such as "제주 서쪽 2박3일 커플 여행". The whole query is
// kept as free text for scoring.
func ParseTextQuery(query string) TextQuery {
	text := strings.TrimSpace(query)
	region, zones := parseRegion(text)
	return TextQuery{
		Original:      query,
		Days:          parseDays(strings.ToLower(text)),
		Tags:          parseTags(text),
		RegionAddress: region,
		Zones:         zones,
		FreeText:      query,
	}
}

func parseDays(text string) int {
	if m := nightsDaysRe.FindStringSubmatch(text); m != nil {
		return atLeastOne(m[2])
	}
	if m := nightsRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return max(n+1, 1)
	}
	if m := daysRe.FindStringSubmatch(text); m != nil {
		return atLeastOne(m[1])
	}
	if strings.Contains(text, "일") {
		for _, n := range koreanDayNumerals {
			if strings.Contains(text, n.word) {
				return n.days
			}
		}
	}
	return 1
}

func atLeastOne(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return max(n, 1)
}

func parseRegion(text string) (string, []planner.Zone) {
	for _, kw := range textRegionKeywords {
		if strings.Contains(text, kw.keyword) {
			return kw.value, nil
		}
	}
	switch {
	case strings.Contains(text, "서쪽") || strings.Contains(text, "서부"):
		return "", []planner.Zone{planner.ZoneJejuWest, planner.ZoneSeogwipoWest}
	case strings.Contains(text, "동쪽") || strings.Contains(text, "동부"):
		return "", []planner.Zone{planner.ZoneJejuEast, planner.ZoneSeogwipoEast}
	}
	return "", nil
}

func parseTags(text string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, kw := range textTagKeywords {
		if !strings.Contains(text, kw.keyword) {
			continue
		}
		if _, dup := seen[kw.value]; dup {
			continue
		}
		seen[kw.value] = struct{}{}
		tags = append(tags, kw.value)
	}
	if len(tags) == 0 {
		return []string{defaultTextTag}
	}
	return tags
}
