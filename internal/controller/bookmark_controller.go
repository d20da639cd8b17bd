package controller

import (
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

func NewBookmarkController(bookmarkService *service.BookmarkService) *BookmarkController {
	return &BookmarkController{BookmarkService: bookmarkService}
}

// @Summary Get bookmarks
// @Description Returns the saved article and question bookmarks
// @Tags Bookmarks
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/bookmarks [get]
func (c *BookmarkController) GetBookmarks(ctx *gin.Context) {
	util.Success(ctx, c.BookmarkService.Bookmarks(ctx.Request.Context()))
}

// @Summary Toggle an article bookmark
// @Description Adds the article if absent, removes it if present
// @Tags Bookmarks
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} util.Response
// @Router /api/bookmarks/articles/{articleId} [put]
func (c *BookmarkController) ToggleArticle(ctx *gin.Context) {
	util.Success(ctx, c.BookmarkService.ToggleArticle(ctx.Request.Context(), ctx.Param("articleId")))
}

// @Summary Toggle a question bookmark
// @Description Adds the question if absent, removes it if present
// @Tags Bookmarks
// @Produce json
// @Param questionId path string true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/bookmarks/questions/{questionId} [put]
func (c *BookmarkController) ToggleQuestion(ctx *gin.Context) {
	util.Success(ctx, c.BookmarkService.ToggleQuestion(ctx.Request.Context(), ctx.Param("questionId")))
}

// @Summary Clear article bookmarks
// @Tags Bookmarks
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/bookmarks/articles [delete]
func (c *BookmarkController) ClearArticles(ctx *gin.Context) {
	util.Success(ctx, c.BookmarkService.ClearArticles(ctx.Request.Context()))
}

// @Summary Clear question bookmarks
// @Tags Bookmarks
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/bookmarks/questions [delete]
func (c *BookmarkController) ClearQuestions(ctx *gin.Context) {
	util.Success(ctx, c.BookmarkService.ClearQuestions(ctx.Request.Context()))
}
