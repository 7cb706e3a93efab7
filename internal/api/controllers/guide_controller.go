package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"guidebot/internal/models/response_models"
	"guidebot/internal/services"
	"guidebot/pkg/utils"
)

type GuideController struct {
	assistantService services.AssistantServiceInterface
}

func NewGuideController(assistantService services.AssistantServiceInterface) *GuideController {
	return &GuideController{
		assistantService: assistantService,
	}
}

// GetRoute godoc
// @Summary Get a ready-made route
// @Description Fetch the formatted itinerary for the given number of days
// @Tags Guide
// @Produce json
// @Param days path int true "Route duration in days (1-3)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /guide/route/{days} [get]
func (g *GuideController) GetRoute(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day count")
		return
	}

	route, err := g.assistantService.RouteByDuration(days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// GetSights godoc
// @Summary List sights in a district
// @Tags Guide
// @Produce json
// @Param district path string true "District name"
// @Success 200 {object} utils.APIResponse
// @Router /guide/sights/{district} [get]
func (g *GuideController) GetSights(c *gin.Context) {
	sights, err := g.assistantService.PlacesByDistrict(c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sights, "Sights fetched successfully")
}

// GetEateries godoc
// @Summary List eateries in a district
// @Tags Guide
// @Produce json
// @Param district path string true "District name"
// @Success 200 {object} utils.APIResponse
// @Router /guide/eat/{district} [get]
func (g *GuideController) GetEateries(c *gin.Context) {
	eateries, err := g.assistantService.EateriesByDistrict(c.Param("district"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, eateries, "Eateries fetched successfully")
}

// GetDistricts godoc
// @Summary List known districts
// @Tags Guide
// @Produce json
// @Param kind query string false "Filter by record kind (sights or restaurants)"
// @Success 200 {object} response_models.DistrictsResponse
// @Router /guide/districts [get]
func (g *GuideController) GetDistricts(c *gin.Context) {
	kind := c.Query("kind")

	districts, err := g.assistantService.Districts(kind)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DistrictsResponse{
		Kind:      kind,
		Districts: districts,
	}, "Districts fetched successfully")
}
