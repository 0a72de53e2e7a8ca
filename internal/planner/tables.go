package planner

import (
	"math"
	"sort"
	"time"
)

// NamedArea binds a town or district name found in addresses to a zone.
type NamedArea struct {
	Name string
	Zone Zone
}

// TagChip is a selectable preference tag as shown to clients.
type TagChip struct {
	Key  string `json:"key"`
	Icon string `json:"icon"`
}

type zonePair struct {
	From Zone
	To   Zone
}

// TravelMatrix is a static zone-to-zone travel time table in hours.
type TravelMatrix struct {
	Local   float64
	Default float64
	hours   map[zonePair]float64
}

func NewTravelMatrix(local, fallback float64) TravelMatrix {
	return TravelMatrix{Local: local, Default: fallback, hours: make(map[zonePair]float64)}
}

// Set records the travel time for both directions of a pair.
func (m TravelMatrix) Set(a, b Zone, hours float64) {
	m.hours[zonePair{a, b}] = hours
	m.hours[zonePair{b, a}] = hours
}

func (m TravelMatrix) Hours(from, to Zone) float64 {
	if h, ok := m.hours[zonePair{from, to}]; ok {
		return h
	}
	if from == to && isKnownZone(from) {
		return m.Local
	}
	return m.Default
}

func (m TravelMatrix) Between(from, to Zone) time.Duration {
	return hoursToDuration(m.Hours(from, to))
}

// Tables carries the static lookup data the planner is driven by. A Tables
// value is never mutated after construction.
type Tables struct {
	NamedAreas     []NamedArea
	BaseTags       []TagChip
	StayTags       []TagChip
	FoodTags       []TagChip
	ExtraTags      []string
	Expansions     map[string]string
	FoodKeywords   []string
	StayKeywords   []string
	VisitHours     map[Category]float64
	Travel         TravelMatrix
	FirstStopHours float64
}

// VisitDuration is how long a stop of the given category lasts.
func (t *Tables) VisitDuration(c Category) time.Duration {
	if h, ok := t.VisitHours[c]; ok {
		return hoursToDuration(h)
	}
	return hoursToDuration(t.VisitHours[CategoryAttraction])
}

// TagVocabulary returns every known tag key, sorted and de-duplicated.
func (t *Tables) TagVocabulary() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for _, group := range [][]TagChip{t.BaseTags, t.StayTags, t.FoodTags} {
		for _, chip := range group {
			add(chip.Key)
		}
	}
	for _, k := range t.ExtraTags {
		add(k)
	}
	sort.Strings(out)
	return out
}

func DefaultTables() *Tables {
	travel := NewTravelMatrix(0.3, 1.0)
	travel.Set(ZoneJejuEast, ZoneJejuWest, 1.0)
	travel.Set(ZoneJejuEast, ZoneSeogwipoEast, 0.8)
	travel.Set(ZoneJejuEast, ZoneSeogwipoWest, 1.2)
	travel.Set(ZoneJejuWest, ZoneSeogwipoEast, 1.3)
	travel.Set(ZoneJejuWest, ZoneSeogwipoWest, 0.8)
	travel.Set(ZoneSeogwipoEast, ZoneSeogwipoWest, 0.9)
	for _, z := range Zones {
		travel.Set(z, z, 0.3)
		if z != ZoneOther {
			travel.Set(z, ZoneOther, 1.0)
		}
	}

	return &Tables{
		NamedAreas: []NamedArea{
			{"애월", ZoneJejuWest}, {"애월읍", ZoneJejuWest},
			{"한림", ZoneJejuWest}, {"한림읍", ZoneJejuWest},
			{"협재", ZoneJejuWest},
			{"한경", ZoneJejuWest}, {"한경면", ZoneJejuWest},
			{"고산", ZoneJejuWest},
			{"이호", ZoneJejuWest}, {"이호동", ZoneJejuWest},
			{"도두", ZoneJejuWest}, {"도두동", ZoneJejuWest},

			{"조천", ZoneJejuEast}, {"조천읍", ZoneJejuEast},
			{"함덕", ZoneJejuEast}, {"함덕리", ZoneJejuEast},
			{"구좌", ZoneJejuEast}, {"구좌읍", ZoneJejuEast},
			{"김녕", ZoneJejuEast}, {"김녕리", ZoneJejuEast},
			{"세화", ZoneJejuEast}, {"월정", ZoneJejuEast},
			{"평대", ZoneJejuEast}, {"우도", ZoneJejuEast},

			{"성산", ZoneSeogwipoEast}, {"성산읍", ZoneSeogwipoEast},
			{"표선", ZoneSeogwipoEast}, {"표선면", ZoneSeogwipoEast},
			{"남원", ZoneSeogwipoEast}, {"남원읍", ZoneSeogwipoEast},

			{"중문", ZoneSeogwipoWest}, {"중문동", ZoneSeogwipoWest},
			{"안덕", ZoneSeogwipoWest}, {"안덕면", ZoneSeogwipoWest},
			{"대정", ZoneSeogwipoWest}, {"대정읍", ZoneSeogwipoWest},
			{"모슬포", ZoneSeogwipoWest}, {"화순", ZoneSeogwipoWest},
		},
		BaseTags: []TagChip{
			{"휴식", "🧘"}, {"친구들", "👫"}, {"혼자", "🧭"}, {"문화", "🏛️"}, {"자연", "🏞️"},
			{"사진", "📷"}, {"반려동물 동반", "🐶"}, {"가족여행", "👨‍👩‍👧‍👦"}, {"액티비티", "🎯"}, {"더보기", "➕"},
		},
		StayTags: []TagChip{
			{"럭셔리", "💎"}, {"휴식", "🛌"}, {"가족여행", "👨‍👩‍👧‍👦"}, {"커플", "💑"}, {"사진", "📷"},
			{"반려동물 동반", "🐶"}, {"자연", "🏞️"}, {"오션뷰", "🌊"}, {"풀빌라", "🏊"}, {"더보기", "➕"},
		},
		FoodTags: []TagChip{
			{"흑돼지", "🐷"}, {"고기국수", "🍜"}, {"해장국", "🥣"}, {"제주향토음식", "🍲"}, {"해산물", "🐟"},
			{"한식", "🍱"}, {"일식", "🍣"}, {"중식", "🥡"}, {"양식", "🍝"}, {"더보기", "➕"},
		},
		ExtraTags: []string{"맛집"},
		Expansions: map[string]string{
			"휴식":      "휴식 힐링 조용한 한적한 여유 카페",
			"친구들":     "친구 동행 단체 모임",
			"혼자":      "혼자 솔로 혼자여행 조용한",
			"문화":      "문화 전시 공연 역사 박물관 갤러리 체험",
			"자연":      "자연 숲 바다 산 오름 전망 풍경 해변 드라이브",
			"사진":      "사진 포토 포토스팟 인생샷 뷰 전망 야경",
			"반려동물 동반": "반려동물 반려견 애견 동물 동반",
			"가족여행":    "가족 가족여행 아이 어린이 키즈",
			"액티비티":    "액티비티 체험 레저 서핑 승마 카약",
			"럭셔리":     "럭셔리 고급 프리미엄 스파",
			"커플":      "커플 연인 로맨틱 데이트 감성",
			"오션뷰":     "오션뷰 바다뷰 바다전망 해변 해안",
			"풀빌라":     "풀빌라 수영장 프라이빗 독채",
			"흑돼지":     "흑돼지 고기 삼겹살 구이",
			"고기국수":    "고기국수 국수 국밥",
			"해장국":     "해장국 국밥",
			"제주향토음식":  "향토음식 제주음식 토속음식",
			"해산물":     "해산물 회 해물 생선 조개",
			"한식":      "한식 백반 식당",
			"일식":      "일식 초밥 스시",
			"중식":      "중식 중국집 짜장 짬뽕",
			"양식":      "양식 파스타 피자 스테이크",
			"맛집":      "맛집 음식점 식당 카페 로컬 맛집",
		},
		FoodKeywords:   []string{"food", "restaurant", "cafe", "식당", "카페", "맛집"},
		StayKeywords:   []string{"stay", "hotel", "숙소", "펜션", "리조트", "게스트하우스"},
		VisitHours: map[Category]float64{
			CategoryAttraction: 1.5,
			CategoryFood:       1,
			CategoryStay:       12,
		},
		Travel:         travel,
		FirstStopHours: 0.5,
	}
}

func isKnownZone(z Zone) bool {
	for _, k := range Zones {
		if k == z {
			return true
		}
	}
	return false
}

// hoursToDuration rounds to whole minutes so clock arithmetic stays exact.
func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h*60)) * time.Minute
}
