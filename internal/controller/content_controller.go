package controller

import (
	"clat_prep_backend/internal/service"
	"clat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List learning modules
// @Description Returns the learning modules with their lessons
// @Tags Content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/modules [get]
func (c *ContentController) GetModules(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Modules())
}

// @Summary Get one learning module
// @Description Returns a single module with its lessons
// @Tags Content
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /api/modules/{moduleId} [get]
func (c *ContentController) GetModule(ctx *gin.Context) {
	module, err := c.ContentService.ModuleByID(ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, module)
}

// @Summary List mock tests
// @Description Returns the mock test catalog
// @Tags Content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tests [get]
func (c *ContentController) GetTests(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Tests())
}

// @Summary Get one mock test
// @Description Returns a test with its resolved question list
// @Tags Content
// @Produce json
// @Param testId path string true "Test ID"
// @Success 200 {object} util.Response
// @Router /api/tests/{testId} [get]
func (c *ContentController) GetTest(ctx *gin.Context) {
	testID := ctx.Param("testId")

	test, ok := c.ContentService.TestByID(testID)
	if !ok {
		util.NotFound(ctx)
		return
	}

	questions, err := c.ContentService.TestQuestions(testID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"test":      test,
		"questions": questions,
	})
}

// @Summary List practice topics
// @Description Returns the practice topics grouped from the question bank
// @Tags Content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/practice/topics [get]
func (c *ContentController) GetPracticeTopics(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.PracticeTopics())
}

// @Summary Get questions for a practice topic
// @Description Returns the question set for one section/topic pair
// @Tags Content
// @Produce json
// @Param topicId path string true "Composite topic key (Section-Topic)"
// @Success 200 {object} util.Response
// @Router /api/practice/topics/{topicId}/questions [get]
func (c *ContentController) GetTopicQuestions(ctx *gin.Context) {
	questions, err := c.ContentService.TopicQuestions(ctx.Param("topicId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, questions)
}
