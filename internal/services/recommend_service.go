package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jejutrip/internal/config"
	"jejutrip/internal/metrics"
	"jejutrip/internal/models/request_models"
	"jejutrip/internal/models/response_models"
	"jejutrip/internal/planner"
	"jejutrip/pkg/utils"
)

const (
	SourceRecommend = "recommend"
	SourceText      = "recommend_text"
	SourceChat      = "chat"
)

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendResponse, error)
	RecommendText(ctx context.Context, req request_models.RecommendTextRequest) (response_models.RecommendTextResponse, error)
}

type RecommendService struct {
	engine *planner.Engine
	cfg    config.PlannerConfig
	log    *zap.Logger
}

// NewRecommendService returns the concrete service so the chat service can
// plan through the same instance.
func NewRecommendService(engine *planner.Engine, cfg config.PlannerConfig, log *zap.Logger) *RecommendService {
	return &RecommendService{
		engine: engine,
		cfg:    cfg,
		log:    log.Named("recommend"),
	}
}

func (s *RecommendService) Recommend(ctx context.Context, req request_models.RecommendRequest) (response_models.RecommendResponse, error) {
	days, err := s.days(req.Days)
	if err != nil {
		return response_models.RecommendResponse{}, err
	}
	perDay, err := s.perDay(req.MaxPlacesPerDay)
	if err != nil {
		return response_models.RecommendResponse{}, err
	}
	strategy, err := s.strategy(req.Strategy)
	if err != nil {
		return response_models.RecommendResponse{}, err
	}
	zones, err := parseZones(req.Subregions)
	if err != nil {
		return response_models.RecommendResponse{}, err
	}
	if req.DailyHours < 0 {
		return response_models.RecommendResponse{}, fmt.Errorf("%w: daily_hours must not be negative", utils.ErrInvalidInput)
	}

	return s.plan(ctx, SourceRecommend, planner.Request{
		Tags:            req.Tags,
		FreeText:        req.FreeText,
		RegionPattern:   req.Region,
		Zones:           zones,
		Days:            days,
		MaxPlacesPerDay: perDay,
		Strategy:        strategy,
		StartTime:       s.startTime(req.StartTime),
		DailyHours:      s.dailyHours(req.DailyHours),
	})
}

func (s *RecommendService) RecommendText(ctx context.Context, req request_models.RecommendTextRequest) (response_models.RecommendTextResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return response_models.RecommendTextResponse{}, fmt.Errorf("%w: query is empty", utils.ErrInvalidInput)
	}
	perDay, err := s.perDay(req.MaxPlacesPerDay)
	if err != nil {
		return response_models.RecommendTextResponse{}, err
	}
	strategy, err := s.strategy(req.Strategy)
	if err != nil {
		return response_models.RecommendTextResponse{}, err
	}

	q := ParseTextQuery(req.Query)
	days := min(q.Days, s.cfg.MaxDays)

	itinerary, err := s.plan(ctx, SourceText, planner.Request{
		Tags:            q.Tags,
		FreeText:        q.FreeText,
		RegionPattern:   q.RegionAddress,
		Zones:           q.Zones,
		Days:            days,
		MaxPlacesPerDay: perDay,
		Strategy:        strategy,
		StartTime:       s.startTime(req.StartTime),
		DailyHours:      s.cfg.DailyHours,
	})
	if err != nil {
		return response_models.RecommendTextResponse{}, err
	}

	parsed := response_models.ParsedQuery{
		Original:         q.Original,
		Days:             q.Days,
		Tags:             q.Tags,
		RegionSubregions: zoneLabels(q.Zones),
		FreeText:         q.FreeText,
	}
	if q.RegionAddress != "" {
		region := q.RegionAddress
		parsed.RegionAddress = &region
	}

	return response_models.RecommendTextResponse{
		Parsed:    parsed,
		Itinerary: itinerary,
		Message:   FormatItineraryMessage(parsed, itinerary.Days),
	}, nil
}

// plan runs the engine and records metrics for one request. It is shared by
// every entry point that ends in an itinerary.
func (s *RecommendService) plan(ctx context.Context, source string, req planner.Request) (response_models.RecommendResponse, error) {
	if s.engine == nil {
		return response_models.RecommendResponse{}, utils.ErrCatalogUnavailable
	}
	if err := ctx.Err(); err != nil {
		return response_models.RecommendResponse{}, err
	}

	started := time.Now()
	res := s.engine.Plan(req)
	elapsed := time.Since(started)

	outcome := metrics.OutcomeItinerary
	if len(res.Days) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ItinerariesBuilt.WithLabelValues(source, string(req.Strategy), outcome).Inc()
	metrics.PlanDuration.WithLabelValues(string(req.Strategy)).Observe(elapsed.Seconds())
	if res.FallbackApplied {
		metrics.RegionFallbacks.WithLabelValues(source).Inc()
	}
	for _, d := range res.Days {
		for _, stop := range d.Stops {
			metrics.StopsPlanned.WithLabelValues(string(stop.Category)).Inc()
		}
	}

	requestID := uuid.NewString()
	s.log.Info("itinerary planned",
		zap.String("request_id", requestID),
		zap.String("source", source),
		zap.String("strategy", string(req.Strategy)),
		zap.Int("days_requested", req.Days),
		zap.Int("days_planned", len(res.Days)),
		zap.Int("stops", res.StopCount()),
		zap.Bool("fallback_applied", res.FallbackApplied),
		zap.Strings("merged_tags", res.MergedTags),
		zap.Duration("elapsed", elapsed),
	)

	return toRecommendResponse(res, req.Strategy, requestID), nil
}

func (s *RecommendService) days(v *int) (int, error) {
	if v == nil {
		return s.cfg.DefaultDays, nil
	}
	if *v < 1 || *v > s.cfg.MaxDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", utils.ErrInvalidInput, s.cfg.MaxDays)
	}
	return *v, nil
}

func (s *RecommendService) perDay(v *int) (int, error) {
	if v == nil {
		return s.cfg.DefaultMaxPlacesPerDay, nil
	}
	if *v < 1 || *v > s.cfg.MaxPlacesPerDayLimit {
		return 0, fmt.Errorf("%w: max_places_per_day must be between 1 and %d", utils.ErrInvalidInput, s.cfg.MaxPlacesPerDayLimit)
	}
	return *v, nil
}

func (s *RecommendService) strategy(v string) (planner.Strategy, error) {
	if strings.TrimSpace(v) == "" {
		v = s.cfg.Strategy
	}
	st, ok := planner.ParseStrategy(v)
	if !ok {
		return "", fmt.Errorf("%w: unknown strategy %q", utils.ErrInvalidInput, v)
	}
	return st, nil
}

func (s *RecommendService) startTime(v string) string {
	if strings.TrimSpace(v) == "" {
		return s.cfg.StartTime
	}
	return v
}

func (s *RecommendService) dailyHours(v float64) float64 {
	if v == 0 {
		return s.cfg.DailyHours
	}
	return v
}

func parseZones(labels []string) ([]planner.Zone, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	zones := make([]planner.Zone, 0, len(labels))
	for _, l := range labels {
		z, ok := planner.ParseZone(l)
		if !ok {
			return nil, fmt.Errorf("%w: unknown subregion %q", utils.ErrInvalidInput, l)
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func zoneLabels(zones []planner.Zone) []string {
	if zones == nil {
		return nil
	}
	out := make([]string, len(zones))
	for i, z := range zones {
		out[i] = z.Label()
	}
	return out
}
