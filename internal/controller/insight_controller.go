package controller

import (
	"net/http"

	"sensai_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary Market insights
// @Description Static market snapshot
// @Tags insights
// @Produce json
// @Success 200 {object} model.MarketInsights
// @Router /api/insights [get]
func (c *InsightController) GetInsights(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.InsightService.GetMarketInsights())
}
