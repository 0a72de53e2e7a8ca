package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItinerariesBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itineraries_built_total",
			Help: "Total number of itinerary requests served, by entry point, strategy and outcome",
		},
		[]string{"source", "strategy", "outcome"},
	)

	RegionFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_region_fallbacks_total",
			Help: "Region filters that matched nothing and fell back to the whole catalog",
		},
		[]string{"source"},
	)

	StopsPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_stops_planned_total",
			Help: "Stops emitted in itineraries, by category",
		},
		[]string{"category"},
	)

	PlanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinerary_plan_duration_seconds",
			Help:    "Time spent building one itinerary",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"strategy"},
	)

	CatalogPlaces = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_places",
			Help: "Places loaded into the catalog, by category",
		},
		[]string{"category"},
	)

	CourseAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_course_answers_total",
			Help: "Chat messages answered from a canned course",
		},
		[]string{"course"},
	)
)

const (
	OutcomeItinerary = "itinerary"
	OutcomeEmpty     = "empty"
)
