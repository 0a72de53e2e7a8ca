package services

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/courses.yaml
var coursesYAML []byte

type CourseItem struct {
	TimeLabel   string `yaml:"time_label"`
	Title       string `yaml:"title"`
	Spot        string `yaml:"spot"`
	Description string `yaml:"description"`
}

type CourseDay struct {
	Title string       `yaml:"title"`
	Items []CourseItem `yaml:"items"`
}

type Course struct {
	Name string      `yaml:"name"`
	Days []CourseDay `yaml:"days"`
}

type MultiDayCourse struct {
	Route     []string `yaml:"route"`
	Intro     string   `yaml:"intro"`
	RouteLine string   `yaml:"route_line"`
	Outro     string   `yaml:"outro"`
}

// CourseBook holds the canned courses the chat endpoint can answer with
// before falling back to the planner.
type CourseBook struct {
	Courses  map[string]Course `yaml:"courses"`
	MultiDay MultiDayCourse    `yaml:"multi_day"`
}

const (
	CourseEast     = "east"
	CourseWest     = "west"
	CourseSouth    = "south"
	CourseNorth    = "north"
	CourseMultiDay = "2n3d"
)

var courseDirections = []struct {
	word   string
	course string
}{
	{"서쪽", CourseWest},
	{"동쪽", CourseEast},
	{"남쪽", CourseSouth},
	{"북쪽", CourseNorth},
}

func LoadCourseBook() (*CourseBook, error) {
	return ParseCourseBook(coursesYAML)
}

func ParseCourseBook(data []byte) (*CourseBook, error) {
	var book CourseBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parse course book: %w", err)
	}
	for _, key := range book.MultiDay.Route {
		if _, ok := book.Courses[key]; !ok {
			return nil, fmt.Errorf("parse course book: route references unknown course %q", key)
		}
	}
	return &book, nil
}

// Match returns the canned answer for a message asking for a 2박3일 course
// or a course on one side of the island, and the course key it used.
func (b *CourseBook) Match(message string) (string, string, bool) {
	msg := strings.ToLower(strings.ReplaceAll(message, " ", ""))
	if msg == "" {
		return "", "", false
	}

	if (strings.Contains(msg, "2박3일") || (strings.Contains(msg, "2박") && strings.Contains(msg, "3일"))) &&
		strings.Contains(msg, "코스") {
		return b.multiDayAnswer(), CourseMultiDay, true
	}

	if !strings.Contains(msg, "코스") && !strings.Contains(msg, "일정") {
		return "", "", false
	}
	for _, d := range courseDirections {
		if strings.Contains(msg, d.word) {
			answer, ok := b.singleAnswer(d.course)
			return answer, d.course, ok
		}
	}
	return "", "", false
}

func (b *CourseBook) singleAnswer(key string) (string, bool) {
	course, ok := b.Courses[key]
	if !ok {
		return "", false
	}
	var lines []string
	for _, day := range course.Days {
		lines = append(lines, "📅 "+day.Title)
		for _, item := range day.Items {
			lines = append(lines, courseItemLine(item))
			if item.Description != "" {
				lines = append(lines, "   · "+item.Description)
			}
		}
		lines = append(lines, "")
	}
	body := strings.TrimSpace(strings.Join(lines, "\n"))
	return fmt.Sprintf("🗺 %s 추천 일정이에요.\n\n%s", course.Name, body), true
}

func (b *CourseBook) multiDayAnswer() string {
	lines := []string{b.MultiDay.Intro, b.MultiDay.RouteLine + "\n"}
	for i, key := range b.MultiDay.Route {
		course := b.Courses[key]
		if len(course.Days) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("📅 %d일차: %s", i+1, course.Name))
		for _, item := range course.Days[0].Items {
			lines = append(lines, courseItemLine(item))
		}
		lines = append(lines, "")
	}
	lines = append(lines, b.MultiDay.Outro)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func courseItemLine(item CourseItem) string {
	if item.Spot != "" {
		return fmt.Sprintf(" - %s: %s (%s)", item.TimeLabel, item.Title, item.Spot)
	}
	return fmt.Sprintf(" - %s: %s", item.TimeLabel, item.Title)
}
