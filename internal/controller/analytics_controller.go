package controller

import (
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Get the analytics summary
// @Description Returns the unified rollup of test, quiz and practice history
// @Tags Analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	util.Success(ctx, c.AnalyticsService.Summary(ctx.Request.Context()))
}
