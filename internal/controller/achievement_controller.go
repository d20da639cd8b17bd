package controller

import (
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary List achievements
// @Description Returns the full badge catalog merged with stored progress
// @Tags Achievements
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	rctx := ctx.Request.Context()
	unlocked, total := c.AchievementService.UnlockedCount(rctx)

	util.Success(ctx, gin.H{
		"achievements": c.AchievementService.Achievements(rctx),
		"unlocked":     unlocked,
		"total":        total,
		"bonusXP":      c.AchievementService.AchievementXP(rctx),
	})
}
