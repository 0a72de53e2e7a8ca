package response_models

type ItineraryItem struct {
	Day              int      `json:"day"`
	OrderInDay       int      `json:"order_in_day"`
	PlaceID          int      `json:"place_id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	CategoryCode     string   `json:"category_code"`
	Address          string   `json:"address"`
	RegionCity       string   `json:"region_city"`
	Subregion        string   `json:"subregion"`
	Zone             string   `json:"zone"`
	Tags             string   `json:"tags"`
	DescriptionShort string   `json:"descriptionShort"`
	Similarity       float64  `json:"similarity"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`

	// "HH:MM", with a "+N" day suffix once past midnight.
	VisitStart  string   `json:"visit_start,omitempty"`
	VisitEnd    string   `json:"visit_end,omitempty"`
	TravelHours *float64 `json:"travel_hours,omitempty"`
	StayHours   *float64 `json:"stay_hours,omitempty"`
}

type DayPlan struct {
	Day   int             `json:"day"`
	Items []ItineraryItem `json:"items"`

	StartTime        string   `json:"start_time,omitempty"`
	EndTime          string   `json:"end_time,omitempty"`
	TotalTravelHours *float64 `json:"total_travel_hours,omitempty"`
	TotalStayHours   *float64 `json:"total_stay_hours,omitempty"`
}

type RecommendResponse struct {
	RequestID       string    `json:"request_id"`
	Strategy        string    `json:"strategy"`
	MergedTags      []string  `json:"merged_tags"`
	FallbackApplied bool      `json:"fallback_applied"`
	Days            []DayPlan `json:"days"`
}

type ParsedQuery struct {
	Original         string   `json:"original"`
	Days             int      `json:"days"`
	Tags             []string `json:"tags"`
	RegionAddress    *string  `json:"region_address"`
	RegionSubregions []string `json:"region_subregions"`
	FreeText         string   `json:"freeText"`
}

type RecommendTextResponse struct {
	Parsed    ParsedQuery       `json:"parsed"`
	Itinerary RecommendResponse `json:"itinerary"`
	Message   string            `json:"message"`
}

type ChatResponse struct {
	Reply     string            `json:"reply"`
	Course    string            `json:"course,omitempty"`
	Itinerary RecommendResponse `json:"itinerary"`
}
