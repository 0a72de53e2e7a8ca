package services_fx

import (
	"go.uber.org/fx"

	"jejutrip/internal/services"
)

var Module = fx.Provide(
	services.LoadCourseBook,
	services.NewRecommendService,
	provideRecommendServiceInterface,
	services.NewChatService,
	services.NewPlaceService,
	services.NewTagService,
)

// The chat service plans through the same *RecommendService the
// controllers see through its interface.
func provideRecommendServiceInterface(s *services.RecommendService) services.RecommendServiceInterface {
	return s
}
