package app

import (
	"clat_prep_backend/docs"
	"clat_prep_backend/internal/middleware"

	"clat_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	api.Use(middleware.ActivityMiddleware(s.streak))
	{
		// Catalogs
		api.GET("/modules", c.content.GetModules)
		api.GET("/modules/:moduleId", c.content.GetModule)
		api.GET("/tests", c.content.GetTests)
		api.GET("/tests/:testId", c.content.GetTest)

		// Mock tests
		api.POST("/tests/:testId/submit", c.test.SubmitTest)
		api.GET("/attempts", c.test.GetAttempts)
		api.GET("/attempts/:attemptId", c.test.GetAttempt)

		// Topic practice
		api.GET("/practice/topics", c.content.GetPracticeTopics)
		api.GET("/practice/topics/:topicId/questions", c.content.GetTopicQuestions)
		api.GET("/practice/sessions", c.practice.GetLog)
		api.POST("/practice/sessions", c.practice.SubmitSession)

		// Current affairs
		api.GET("/articles", c.currentAffairs.GetArticles)
		api.GET("/articles/quiz-attempts", c.currentAffairs.GetQuizAttempts)
		api.GET("/articles/:articleId", c.currentAffairs.GetArticle)
		api.POST("/articles/:articleId/read", c.currentAffairs.MarkRead)
		api.POST("/articles/:articleId/quiz", c.currentAffairs.SubmitQuiz)

		// Bookmarks
		api.GET("/bookmarks", c.bookmark.GetBookmarks)
		api.PUT("/bookmarks/articles/:articleId", c.bookmark.ToggleArticle)
		api.PUT("/bookmarks/questions/:questionId", c.bookmark.ToggleQuestion)
		api.DELETE("/bookmarks/articles", c.bookmark.ClearArticles)
		api.DELETE("/bookmarks/questions", c.bookmark.ClearQuestions)

		// Gamification
		api.GET("/streak", c.gamification.GetStreak)
		api.POST("/streak/touch", c.gamification.TouchStreak)
		api.GET("/stats", c.gamification.GetStats)
		api.POST("/stats/activity", c.gamification.RecordActivity)
		api.GET("/level", c.gamification.GetLevel)
		api.GET("/achievements", c.achievement.GetAchievements)

		// Reporting
		api.GET("/analytics", c.analytics.GetSummary)
		api.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
