package controller

import (
	"errors"

	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurrentAffairsController struct {
	ContentService        *service.ContentService
	CurrentAffairsService *service.CurrentAffairsService
}

func NewCurrentAffairsController(
	contentService *service.ContentService,
	currentAffairsService *service.CurrentAffairsService,
) *CurrentAffairsController {
	return &CurrentAffairsController{
		ContentService:        contentService,
		CurrentAffairsService: currentAffairsService,
	}
}

// @Summary List current-affairs articles
// @Description Returns the article catalog
// @Tags Current Affairs
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/articles [get]
func (c *CurrentAffairsController) GetArticles(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Articles())
}

// @Summary Get one article
// @Description Returns a single article by id
// @Tags Current Affairs
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} util.Response
// @Router /api/articles/{articleId} [get]
func (c *CurrentAffairsController) GetArticle(ctx *gin.Context) {
	article, ok := c.ContentService.ArticleByID(ctx.Param("articleId"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, article)
}

// @Summary Mark an article as read
// @Description Records an article-read activity and awards XP
// @Tags Current Affairs
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} util.Response
// @Router /api/articles/{articleId}/read [post]
func (c *CurrentAffairsController) MarkRead(ctx *gin.Context) {
	stats, err := c.CurrentAffairsService.MarkArticleRead(ctx.Request.Context(), ctx.Param("articleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, stats)
}

// @Summary Submit an article quiz
// @Description Records a pre-aggregated quiz result for an article
// @Tags Current Affairs
// @Accept json
// @Produce json
// @Param articleId path string true "Article ID"
// @Param result body service.SubmitCAQuizRequest true "Quiz result"
// @Success 201 {object} util.Response
// @Router /api/articles/{articleId}/quiz [post]
func (c *CurrentAffairsController) SubmitQuiz(ctx *gin.Context) {
	var req service.SubmitCAQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Score > req.Total {
		util.BadRequest(ctx, "score cannot exceed total")
		return
	}

	result, err := c.CurrentAffairsService.SubmitQuiz(ctx.Request.Context(), ctx.Param("articleId"), req)
	if err != nil {
		if errors.Is(err, util.ErrArticleNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary List article quiz attempts
// @Description Returns the recorded quiz attempts, oldest first
// @Tags Current Affairs
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/articles/quiz-attempts [get]
func (c *CurrentAffairsController) GetQuizAttempts(ctx *gin.Context) {
	util.Success(ctx, c.CurrentAffairsService.Attempts(ctx.Request.Context()))
}
