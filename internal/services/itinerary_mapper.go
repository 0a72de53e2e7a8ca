package services

import (
	"jejutrip/internal/models/response_models"
	"jejutrip/internal/planner"
	"jejutrip/pkg/utils"
)

func toRecommendResponse(res planner.Result, strategy planner.Strategy, requestID string) response_models.RecommendResponse {
	merged := res.MergedTags
	if merged == nil {
		merged = []string{}
	}
	out := response_models.RecommendResponse{
		RequestID:       requestID,
		Strategy:        string(strategy),
		MergedTags:      merged,
		FallbackApplied: res.FallbackApplied,
		Days:            make([]response_models.DayPlan, 0, len(res.Days)),
	}
	for _, d := range res.Days {
		out.Days = append(out.Days, toDayPlan(d))
	}
	return out
}

func toDayPlan(d planner.DayPlan) response_models.DayPlan {
	plan := response_models.DayPlan{
		Day:   d.Day,
		Items: make([]response_models.ItineraryItem, 0, len(d.Stops)),
	}
	for _, s := range d.Stops {
		plan.Items = append(plan.Items, toItineraryItem(d.Day, s, d.Scheduled))
	}
	if d.Scheduled {
		plan.StartTime = planner.FormatClock(d.Start)
		plan.EndTime = planner.FormatClock(d.End)
		travel, stay := utils.RoundHours(d.TotalTravelHours), utils.RoundHours(d.TotalStayHours)
		plan.TotalTravelHours = &travel
		plan.TotalStayHours = &stay
	}
	return plan
}

func toItineraryItem(day int, s planner.Stop, scheduled bool) response_models.ItineraryItem {
	p := s.Place
	item := response_models.ItineraryItem{
		Day:              day,
		OrderInDay:       s.OrderInDay,
		PlaceID:          p.ID,
		Name:             p.Name,
		Category:         s.Category.Label(),
		CategoryCode:     string(s.Category),
		Address:          p.Address,
		RegionCity:       p.City.Label(),
		Subregion:        p.Zone.Label(),
		Zone:             string(p.Zone),
		Tags:             p.Tags,
		DescriptionShort: p.Description,
		Similarity:       s.Similarity,
		Lat:              p.Latitude,
		Lng:              p.Longitude,
	}
	if scheduled {
		item.VisitStart = planner.FormatClock(s.Arrival)
		item.VisitEnd = planner.FormatClock(s.Departure)
		travel, stay := utils.RoundHours(s.TravelHours), utils.RoundHours(s.StayHours)
		item.TravelHours = &travel
		item.StayHours = &stay
	}
	return item
}

func toPlace(p *planner.Place) response_models.Place {
	return response_models.Place{
		ID:           p.ID,
		ExternalID:   p.ExternalID,
		Name:         p.Name,
		Category:     p.Category.Label(),
		CategoryCode: string(p.Category),
		Address:      p.Address,
		RegionCity:   p.City.Label(),
		Subregion:    p.Zone.Label(),
		Zone:         string(p.Zone),
		Tags:         p.Tags,
		Description:  p.Description,
		OpeningHours: p.OpeningHours,
		Phone:        p.Phone,
		PriceInfo:    p.PriceInfo,
		ThumbnailURL: p.ThumbnailURL,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}
}
