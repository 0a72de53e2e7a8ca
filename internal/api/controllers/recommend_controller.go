package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jejutrip/internal/models/request_models"
	"jejutrip/internal/services"
	"jejutrip/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
	chatService      services.ChatServiceInterface
	log              *zap.Logger
}

func NewRecommendController(
	recommendService services.RecommendServiceInterface,
	chatService services.ChatServiceInterface,
	log *zap.Logger,
) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
		chatService:      chatService,
		log:              log,
	}
}

func (rc *RecommendController) Recommend(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := rc.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary created successfully")
}

func (rc *RecommendController) RecommendText(c *gin.Context) {
	var req request_models.RecommendTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	resp, err := rc.recommendService.RecommendText(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary created successfully")
}

func (rc *RecommendController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := rc.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "Chat answered successfully")
}
