package controller

import (
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// @Summary Submit a practice session
// @Description Records one topic practice session and updates the per-topic aggregates
// @Tags Practice
// @Accept json
// @Produce json
// @Param session body service.SubmitSessionRequest true "Session result"
// @Success 201 {object} util.Response
// @Router /api/practice/sessions [post]
func (c *PracticeController) SubmitSession(ctx *gin.Context) {
	var req service.SubmitSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Correct > req.Total {
		util.BadRequest(ctx, "correct cannot exceed total")
		return
	}

	util.Created(ctx, c.PracticeService.SubmitSession(ctx.Request.Context(), req))
}

// @Summary Get the practice log
// @Description Returns all recorded sessions plus the per-topic aggregate cache
// @Tags Practice
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/practice/sessions [get]
func (c *PracticeController) GetLog(ctx *gin.Context) {
	util.Success(ctx, c.PracticeService.Log(ctx.Request.Context()))
}
