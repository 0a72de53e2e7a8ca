package controllers_fx

import (
	"go.uber.org/fx"

	"jejutrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRecommendController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewTagController))
