package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jejutrip/internal/models/request_models"
	"jejutrip/internal/services"
	"jejutrip/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
	log          *zap.Logger
}

func NewPlacesController(placeService services.PlaceServiceInterface, log *zap.Logger) *PlacesController {
	return &PlacesController{
		placeService: placeService,
		log:          log,
	}
}

func (p *PlacesController) GetPlaceByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	place, err := p.placeService.GetPlaceByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (p *PlacesController) ListPlaces(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), request_models.ListPlacesRequest{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Zone:     c.Query("zone"),
	})
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// Health reports liveness along with a short catalog summary.
func (p *PlacesController) Health(c *gin.Context) {
	stats, err := p.placeService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Jeju itinerary recommender is running",
		"places":  stats.Places,
	})
}

func (p *PlacesController) Stats(c *gin.Context) {
	stats, err := p.placeService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, stats, "Catalog stats fetched successfully")
}
