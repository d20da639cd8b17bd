package service

import (
	"context"
	"testing"
	"time"

	"clat_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func newPracticeFixture() (*PracticeService, *repository.GamificationRepository) {
	store := repository.NewMemoryDocumentStore()
	gamification := repository.NewGamificationRepository(store)

	now := func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	streak := NewStreakService(gamification)
	streak.now = now
	achievements := NewAchievementService(gamification)
	achievements.now = now

	svc := NewPracticeService(repository.NewPracticeRepository(store), streak, achievements)
	return svc, gamification
}

func TestSubmitSessionRecordsAndAwardsXP(t *testing.T) {
	svc, gamification := newPracticeFixture()
	ctx := context.Background()

	result := svc.SubmitSession(ctx, SubmitSessionRequest{
		TopicID: "Legal Reasoning-Contracts",
		Correct: 7,
		Total:   10,
	})

	assert.Equal(t, 7, result.TopicStat.Correct)
	assert.Equal(t, 10, result.TopicStat.Attempted)

	stats := gamification.Stats(ctx)
	assert.Equal(t, 10, stats.QuestionsTotal)
	assert.Equal(t, 10, stats.QuestionsToday)
	assert.Equal(t, 100, stats.TotalXP)
}

func TestSubmitSessionAccumulatesTopicStats(t *testing.T) {
	svc, _ := newPracticeFixture()
	ctx := context.Background()

	svc.SubmitSession(ctx, SubmitSessionRequest{TopicID: "English Language-Grammar", Correct: 3, Total: 5})
	result := svc.SubmitSession(ctx, SubmitSessionRequest{TopicID: "English Language-Grammar", Correct: 4, Total: 5})

	assert.Equal(t, 7, result.TopicStat.Correct)
	assert.Equal(t, 10, result.TopicStat.Attempted)
	assert.Len(t, svc.Log(ctx).Sessions, 2)
}

func TestSubmitSessionUnlocksQuestionBadge(t *testing.T) {
	svc, gamification := newPracticeFixture()
	ctx := context.Background()

	svc.SubmitSession(ctx, SubmitSessionRequest{TopicID: "Legal Reasoning-Torts", Correct: 20, Total: 25})

	progress := gamification.Achievements(ctx)
	assert.NotNil(t, progress["questions-25"].UnlockedAt)
}
