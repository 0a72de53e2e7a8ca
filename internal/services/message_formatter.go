package services

import (
	"fmt"
	"strings"

	"jejutrip/internal/models/response_models"
)

const (
	itineraryFooter     = "세부 일정은 순서대로 참고하시고, 시간은 자유롭게 조정해 주세요!"
	chatItineraryFooter = "세부 일정은 순서대로 참고해서 시간은 자유롭게 조정해 주세요!"
	chatNoResult        = "조건에 맞는 코스를 찾지 못했어요. 날짜/지역/원하는 분위기를 조금 더 자세히 알려줄래요?"
	chatMaxMoodTags     = 3
)

// FormatItineraryMessage writes the Korean summary returned alongside a
// free-text recommendation.
func FormatItineraryMessage(parsed response_models.ParsedQuery, days []response_models.DayPlan) string {
	if len(days) == 0 {
		return fmt.Sprintf("요청하신 \"%s\" 조건에 딱 맞는 코스를 찾지 못했어요 😢\n", parsed.Original) +
			"여행 일수나 지역, 분위기 조건을 조금만 완화해서 다시 알려주시면\n" +
			"더 잘 맞는 일정을 추천해 드릴게요!"
	}

	lines := []string{fmt.Sprintf("요청하신 \"%s\" 조건을 바탕으로 코스를 만들어 봤어요 😊", parsed.Original)}

	sub := fmt.Sprintf("%d일 일정", parsed.Days)
	var mood []string
	for _, t := range parsed.Tags {
		if t != "맛집" {
			mood = append(mood, t)
		}
	}
	if len(mood) > 0 {
		sub += " · " + strings.Join(mood, " / ") + " 분위기"
	}
	lines = append(lines, sub)
	lines = append(lines, dayLines(days)...)
	lines = append(lines, itineraryFooter)
	return strings.Join(lines, "\n")
}

// SummarizeForChat is the chat flavour of the summary: it echoes the region
// label and at most three mood tags.
func SummarizeForChat(days []response_models.DayPlan, q ChatQuery, message string) string {
	if len(days) == 0 {
		return chatNoResult
	}

	var lines []string
	if message != "" {
		lines = append(lines, fmt.Sprintf("요청하신 \"%s\" 조건을 바탕으로 코스를 만들어 봤어요 😊", message))
	}

	var cond []string
	if q.Days > 0 {
		cond = append(cond, fmt.Sprintf("%d일 일정", q.Days))
	}
	if q.RegionLabel != "" {
		cond = append(cond, q.RegionLabel)
	}
	if len(q.Tags) > 0 {
		tags := q.Tags[:min(len(q.Tags), chatMaxMoodTags)]
		cond = append(cond, strings.Join(tags, " / ")+" 분위기")
	}
	if len(cond) > 0 {
		lines = append(lines, strings.Join(cond, " · "))
	}

	lines = append(lines, dayLines(days)...)
	lines = append(lines, chatItineraryFooter)
	return strings.Join(lines, "\n")
}

func dayLines(days []response_models.DayPlan) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		segments := make([]string, 0, len(d.Items))
		for _, it := range d.Items {
			segments = append(segments, fmt.Sprintf("%s(%s)", it.Name, it.Category))
		}
		out = append(out, fmt.Sprintf("%d일차 : %s", d.Day, strings.Join(segments, " → ")))
	}
	return out
}
