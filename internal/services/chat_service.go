package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jejutrip/internal/metrics"
	"jejutrip/internal/models/request_models"
	"jejutrip/internal/models/response_models"
	"jejutrip/internal/planner"
	"jejutrip/pkg/utils"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (response_models.ChatResponse, error)
}

type ChatService struct {
	recommender *RecommendService
	courses     *CourseBook
	log         *zap.Logger
}

func NewChatService(recommender *RecommendService, courses *CourseBook, log *zap.Logger) ChatServiceInterface {
	return &ChatService{
		recommender: recommender,
		courses:     courses,
		log:         log.Named("chat"),
	}
}

// Chat answers from a canned course when the message asks for one and
// otherwise plans an itinerary from what the message mentions.
func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (response_models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return response_models.ChatResponse{}, fmt.Errorf("%w: message is empty", utils.ErrInvalidInput)
	}

	if s.courses != nil {
		if answer, course, ok := s.courses.Match(req.Message); ok {
			metrics.CourseAnswers.WithLabelValues(course).Inc()
			s.log.Debug("answered with canned course", zap.String("course", course))
			return response_models.ChatResponse{
				Reply:  answer,
				Course: course,
				Itinerary: response_models.RecommendResponse{
					MergedTags: []string{},
					Days:       []response_models.DayPlan{},
				},
			}, nil
		}
	}

	strategy, err := s.recommender.strategy(req.Strategy)
	if err != nil {
		return response_models.ChatResponse{}, err
	}

	q := ParseChatMessage(req.Message)
	itinerary, err := s.recommender.plan(ctx, SourceChat, planner.Request{
		Tags:            q.Tags,
		FreeText:        req.Message,
		RegionPattern:   q.RegionPattern,
		Days:            q.Days,
		MaxPlacesPerDay: q.MaxPlacesPerDay,
		Strategy:        strategy,
		StartTime:       q.StartTime,
		DailyHours:      s.recommender.cfg.DailyHours,
	})
	if err != nil {
		return response_models.ChatResponse{}, err
	}

	return response_models.ChatResponse{
		Reply:     SummarizeForChat(itinerary.Days, q, req.Message),
		Itinerary: itinerary,
	}, nil
}
