package services

import (
	"jejutrip/internal/models/response_models"
	"jejutrip/internal/planner"
)

type TagServiceInterface interface {
	GetTagGroups() response_models.TagGroups
}

type TagService struct {
	tables *planner.Tables
}

func NewTagService(tables *planner.Tables) TagServiceInterface {
	return &TagService{tables: tables}
}

// GetTagGroups returns the chip groups the client renders for tag
// selection. Every key is part of the scorer's tag vocabulary.
func (t *TagService) GetTagGroups() response_models.TagGroups {
	return response_models.TagGroups{
		Base:  t.tables.BaseTags,
		Stay:  t.tables.StayTags,
		Food:  t.tables.FoodTags,
		Extra: t.tables.ExtraTags,
	}
}
