package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCourseBook(t *testing.T) {
	book, err := LoadCourseBook()
	require.NoError(t, err)

	for _, key := range []string{CourseEast, CourseWest, CourseSouth, CourseNorth} {
		course, ok := book.Courses[key]
		require.True(t, ok, key)
		assert.NotEmpty(t, course.Name)
		require.NotEmpty(t, course.Days)
		assert.NotEmpty(t, course.Days[0].Items)
	}
	assert.Equal(t, []string{CourseWest, CourseSouth, CourseEast}, book.MultiDay.Route)
}

func TestParseCourseBook_UnknownRoute(t *testing.T) {
	_, err := ParseCourseBook([]byte("courses: {}\nmulti_day:\n  route: [west]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}

func TestParseCourseBook_Malformed(t *testing.T) {
	_, err := ParseCourseBook([]byte("courses: [not, a, map"))
	assert.Error(t, err)
}

func TestCourseBook_Match(t *testing.T) {
	book, err := LoadCourseBook()
	require.NoError(t, err)

	tests := []struct {
		message string
		course  string
		matched bool
	}{
		{"2박3일 제주도 코스 알려줘", CourseMultiDay, true},
		{"제주 2박 3일 코스", CourseMultiDay, true},
		{"제주 서쪽 코스 추천", CourseWest, true},
		{"제주서쪽일정", CourseWest, true},
		{"동쪽 일정 짜줘", CourseEast, true},
		{"남쪽 코스", CourseSouth, true},
		{"북쪽 코스", CourseNorth, true},
		{"2박3일 여행 추천", "", false},
		{"서쪽 맛집 추천", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			answer, course, ok := book.Match(tt.message)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.course, course)
			if ok {
				assert.NotEmpty(t, answer)
			}
		})
	}
}

func TestCourseBook_SingleAnswer(t *testing.T) {
	book, err := LoadCourseBook()
	require.NoError(t, err)

	answer, _, ok := book.Match("동쪽 코스")
	require.True(t, ok)

	lines := strings.Split(answer, "\n")
	assert.Equal(t, "🗺 제주 동쪽 코스 추천 일정이에요.", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "📅 1일차: 제주 동쪽 핵심 코스", lines[2])
	assert.Equal(t, " - 오전: 일출 & 성산 전망 즐기기 (성산일출봉)", lines[3])
	assert.Equal(t, "   · 성산일출봉에 올라 일출 또는 탁 트인 바다 뷰 감상.", lines[4])
	assert.Equal(t, " - 점심: 성산 인근 맛집에서 식사", lines[5])
}

func TestCourseBook_MultiDayAnswer(t *testing.T) {
	book, err := LoadCourseBook()
	require.NoError(t, err)

	answer, _, ok := book.Match("2박3일 코스")
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(answer, "⛱ 2박 3일 제주도 추천 코스예요.\n예시 루트: 1일차 서쪽 → 2일차 남쪽 → 3일차 동쪽\n\n📅 1일차: 제주 서쪽 코스"))
	assert.Contains(t, answer, "📅 2일차: 제주 남쪽 코스")
	assert.Contains(t, answer, "📅 3일차: 제주 동쪽 코스")
	assert.NotContains(t, answer, "   · ", "the multi-day answer lists items without descriptions")
	assert.True(t, strings.HasSuffix(answer, "원하면 이 코스를 기준으로 숙소·식당까지 같이 추천해 줄게요."))
}
