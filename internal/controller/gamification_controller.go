package controller

import (
	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	StreakService      *service.StreakService
	AchievementService *service.AchievementService
}

func NewGamificationController(
	streakService *service.StreakService,
	achievementService *service.AchievementService,
) *GamificationController {
	return &GamificationController{
		StreakService:      streakService,
		AchievementService: achievementService,
	}
}

// @Summary Get the activity streak
// @Description Returns the current streak state without transitioning it
// @Tags Gamification
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/streak [get]
func (c *GamificationController) GetStreak(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Streak(ctx.Request.Context()))
}

// @Summary Record today's activity
// @Description Transitions the streak for today; repeated calls are no-ops
// @Tags Gamification
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/streak/touch [post]
func (c *GamificationController) TouchStreak(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Touch(ctx.Request.Context()))
}

// @Summary Get study statistics
// @Description Returns the counters, resetting the daily question count on a new day
// @Tags Gamification
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats [get]
func (c *GamificationController) GetStats(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Stats(ctx.Request.Context()))
}

type recordActivityRequest struct {
	Activity model.ActivityType `json:"activity" binding:"required,oneof=question article quiz test"`
	XP       int                `json:"xp" binding:"min=0"`
}

// @Summary Record a study activity
// @Description Bumps the matching counter and awards XP, then re-checks achievements
// @Tags Gamification
// @Accept json
// @Produce json
// @Param activity body recordActivityRequest true "Activity"
// @Success 200 {object} util.Response
// @Router /api/stats/activity [post]
func (c *GamificationController) RecordActivity(ctx *gin.Context) {
	var req recordActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rctx := ctx.Request.Context()
	streak := c.StreakService.Touch(rctx)
	stats := c.StreakService.RecordActivity(rctx, req.Activity, req.XP)

	_, newly := c.AchievementService.CheckAchievements(rctx, service.ObservedStats{
		CurrentStreak:   streak.CurrentStreak,
		TotalDaysActive: streak.TotalDaysActive,
		QuestionsTotal:  stats.QuestionsTotal,
		QuizzesTaken:    stats.QuizzesTaken,
		TestsCompleted:  stats.TestsCompleted,
		ArticlesRead:    stats.ArticlesRead,
	})

	util.Success(ctx, gin.H{
		"stats":         stats,
		"newlyUnlocked": newly,
	})
}

// @Summary Get the XP level
// @Description Returns the ladder tier for the accumulated XP
// @Tags Gamification
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/level [get]
func (c *GamificationController) GetLevel(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Level(ctx.Request.Context()))
}
