package service

import (
	"context"
	"testing"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func newStreakService(now time.Time) *StreakService {
	s := NewStreakService(repository.NewGamificationRepository(repository.NewMemoryDocumentStore()))
	s.now = func() time.Time { return now }
	return s
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	state := AdvanceStreak(model.DefaultStreakState(), "2026-08-31")

	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.LongestStreak)
	assert.Equal(t, 1, state.TotalDaysActive)
	assert.Equal(t, "2026-08-31", state.LastActiveDate)
	assert.True(t, state.WeeklyActivity[6])
}

func TestAdvanceStreakSameDayNoOp(t *testing.T) {
	state := AdvanceStreak(model.DefaultStreakState(), "2026-08-31")
	again := AdvanceStreak(state, "2026-08-31")

	assert.Equal(t, state, again)
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	state := AdvanceStreak(model.DefaultStreakState(), "2026-08-30")
	state = AdvanceStreak(state, "2026-08-31")

	assert.Equal(t, 2, state.CurrentStreak)
	assert.Equal(t, 2, state.LongestStreak)
	assert.Equal(t, 2, state.TotalDaysActive)
}

func TestAdvanceStreakGapResets(t *testing.T) {
	state := AdvanceStreak(model.DefaultStreakState(), "2026-08-20")
	state = AdvanceStreak(state, "2026-08-21")
	state = AdvanceStreak(state, "2026-08-22")

	// A 3-day gap resets the run but keeps the record and day count.
	state = AdvanceStreak(state, "2026-08-25")

	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
	assert.Equal(t, 4, state.TotalDaysActive)
}

func TestAdvanceStreakLongestNeverDecreases(t *testing.T) {
	state := model.StreakState{
		CurrentStreak:  2,
		LongestStreak:  10,
		LastActiveDate: "2026-08-30",
		WeeklyActivity: make([]bool, 7),
	}

	state = AdvanceStreak(state, "2026-08-31")

	assert.Equal(t, 3, state.CurrentStreak)
	assert.Equal(t, 10, state.LongestStreak)
}

func TestAdvanceStreakWeeklyWindowShifts(t *testing.T) {
	state := model.DefaultStreakState()
	state.WeeklyActivity = []bool{true, false, false, false, false, false, true}
	state.LastActiveDate = "2026-08-30"
	state.CurrentStreak = 1

	state = AdvanceStreak(state, "2026-08-31")

	assert.Equal(t, []bool{false, false, false, false, false, true, true}, state.WeeklyActivity)
	assert.Len(t, state.WeeklyActivity, 7)
}

func TestTouchOncePerDay(t *testing.T) {
	s := newStreakService(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first := s.Touch(ctx)
	second := s.Touch(ctx)

	assert.Equal(t, 1, first.CurrentStreak)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Streak(ctx).TotalDaysActive)
}

func TestRecordActivityCounters(t *testing.T) {
	s := newStreakService(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	s.RecordActivity(ctx, model.ActivityQuestion, 0)
	s.RecordActivity(ctx, model.ActivityArticle, 0)
	s.RecordActivity(ctx, model.ActivityQuiz, 0)
	stats := s.RecordActivity(ctx, model.ActivityTest, 25)

	assert.Equal(t, 1, stats.QuestionsToday)
	assert.Equal(t, 1, stats.QuestionsTotal)
	assert.Equal(t, 1, stats.ArticlesRead)
	assert.Equal(t, 1, stats.QuizzesTaken)
	assert.Equal(t, 1, stats.TestsCompleted)
	assert.Equal(t, 3*10+25, stats.TotalXP)
}

func TestRecordQuestionsBatch(t *testing.T) {
	s := newStreakService(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	stats := s.RecordQuestions(ctx, 12)

	assert.Equal(t, 12, stats.QuestionsToday)
	assert.Equal(t, 12, stats.QuestionsTotal)
	assert.Equal(t, 120, stats.TotalXP)
}

func TestStatsDailyReset(t *testing.T) {
	s := newStreakService(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	s.RecordQuestions(ctx, 5)

	// Next day the daily counter resets; totals persist.
	s.now = func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) }
	stats := s.Stats(ctx)

	assert.Equal(t, 0, stats.QuestionsToday)
	assert.Equal(t, 5, stats.QuestionsTotal)
	assert.Equal(t, 50, stats.TotalXP)
}

func TestLevelForLadder(t *testing.T) {
	cases := []struct {
		xp          int
		level       int
		title       string
		nextLevelXP int
		progress    int
	}{
		{0, 1, "Beginner", 100, 0},
		{99, 1, "Beginner", 100, 99},
		{100, 2, "Apprentice", 300, 0},
		{250, 2, "Apprentice", 300, 150},
		{600, 4, "Expert", 1000, 0},
		{1500, 6, "Grandmaster", 0, 0},
		{99999, 6, "Grandmaster", 0, 0},
	}

	for _, tc := range cases {
		info := LevelFor(tc.xp)
		assert.Equal(t, tc.level, info.Level, "xp=%d", tc.xp)
		assert.Equal(t, tc.title, info.Title, "xp=%d", tc.xp)
		assert.Equal(t, tc.nextLevelXP, info.NextLevelXP, "xp=%d", tc.xp)
		assert.Equal(t, tc.progress, info.Progress, "xp=%d", tc.xp)
	}
}
