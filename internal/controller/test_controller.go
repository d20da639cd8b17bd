package controller

import (
	"errors"

	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// @Summary Submit a mock test
// @Description Grades the answer set against the test's question list and records the attempt
// @Tags Tests
// @Accept json
// @Produce json
// @Param testId path string true "Test ID"
// @Param submission body service.SubmitTestRequest true "Answer set"
// @Success 201 {object} util.Response
// @Router /api/tests/{testId}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req service.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TestService.SubmitTest(ctx.Request.Context(), ctx.Param("testId"), req)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary List test attempts
// @Description Returns the full test attempt log, oldest first
// @Tags Tests
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/attempts [get]
func (c *TestController) GetAttempts(ctx *gin.Context) {
	util.Success(ctx, c.TestService.Attempts(ctx.Request.Context()))
}

// @Summary Get one test attempt
// @Description Returns a single recorded attempt by its id
// @Tags Tests
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Router /api/attempts/{attemptId} [get]
func (c *TestController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.TestService.AttemptByID(ctx.Request.Context(), ctx.Param("attemptId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, attempt)
}
