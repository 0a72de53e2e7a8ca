package controllers

import (
	"github.com/gin-gonic/gin"

	"jejutrip/internal/services"
	"jejutrip/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (tc *TagController) ListTagGroups(c *gin.Context) {
	utils.RespondSuccess(c, tc.tagService.GetTagGroups(), "Fetched tags successfully")
}
