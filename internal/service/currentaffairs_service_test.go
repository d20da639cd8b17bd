package service

import (
	"context"
	"testing"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func newCAFixture() (*CurrentAffairsService, *repository.GamificationRepository) {
	store := repository.NewMemoryDocumentStore()
	gamification := repository.NewGamificationRepository(store)

	now := func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	streak := NewStreakService(gamification)
	streak.now = now
	achievements := NewAchievementService(gamification)
	achievements.now = now

	content := testContent()
	article := model.Article{ID: "art-1", Title: "Landmark Judgment", QuizID: "quiz-1"}
	content.articles[article.ID] = article
	content.articleOrder = append(content.articleOrder, article.ID)

	svc := NewCurrentAffairsService(content, repository.NewCAQuizRepository(store), streak, achievements)
	return svc, gamification
}

func TestSubmitQuizRecordsAttempt(t *testing.T) {
	svc, gamification := newCAFixture()
	ctx := context.Background()

	result, err := svc.SubmitQuiz(ctx, "art-1", SubmitCAQuizRequest{Score: 4, Total: 5})
	assert.NoError(t, err)

	assert.Equal(t, "quiz-1", result.Attempt.QuizID)
	assert.NotEmpty(t, result.Attempt.AttemptID)
	assert.Len(t, svc.Attempts(ctx), 1)

	stats := gamification.Stats(ctx)
	assert.Equal(t, 1, stats.QuizzesTaken)
	assert.Equal(t, 10, stats.TotalXP)
}

func TestSubmitQuizUnknownArticle(t *testing.T) {
	svc, _ := newCAFixture()

	_, err := svc.SubmitQuiz(context.Background(), "nope", SubmitCAQuizRequest{Score: 1, Total: 5})

	assert.ErrorIs(t, err, util.ErrArticleNotFound)
}

func TestMarkArticleRead(t *testing.T) {
	svc, gamification := newCAFixture()
	ctx := context.Background()

	stats, err := svc.MarkArticleRead(ctx, "art-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.ArticlesRead)

	assert.Equal(t, 1, gamification.Streak(ctx).CurrentStreak)

	_, err = svc.MarkArticleRead(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrArticleNotFound)
}
