package request_models

// RecommendRequest is the structured itinerary request. Pointer fields
// distinguish "not sent" (use the configured default) from an explicit zero.
type RecommendRequest struct {
	Tags            []string `json:"tags"`
	Region          string   `json:"region"`
	Subregions      []string `json:"subregions"`
	Days            *int     `json:"days"`
	MaxPlacesPerDay *int     `json:"max_places_per_day"`
	FreeText        string   `json:"freeText"`
	Strategy        string   `json:"strategy"`
	StartTime       string   `json:"start_time"`
	DailyHours      float64  `json:"daily_hours"`
}

type RecommendTextRequest struct {
	Query           string `json:"query" binding:"required"`
	MaxPlacesPerDay *int   `json:"max_places_per_day"`
	Strategy        string `json:"strategy"`
	StartTime       string `json:"start_time"`
}

type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Strategy string `json:"strategy"`
}

type ListPlacesRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Category string `form:"category"`
	Zone     string `form:"zone"`
}
