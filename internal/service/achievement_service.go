package service

import (
	"context"
	"strings"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/pkg/monitoring"
)

// AchievementCatalog is the fixed, ordered badge catalog. Definitions are
// immutable; user progress against them lives in the achievements document.
var AchievementCatalog = []model.Achievement{
	// Streak
	{ID: "streak-3", Title: "Getting Started", Description: "Maintain a 3-day streak", Icon: "🔥", Category: model.CategoryStreak, Requirement: 3, XPReward: 50},
	{ID: "streak-7", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Category: model.CategoryStreak, Requirement: 7, XPReward: 100},
	{ID: "streak-14", Title: "Fortnight Fighter", Description: "Maintain a 14-day streak", Icon: "🔥", Category: model.CategoryStreak, Requirement: 14, XPReward: 200},
	{ID: "streak-30", Title: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "🔥", Category: model.CategoryStreak, Requirement: 30, XPReward: 500},

	// Learning
	{ID: "articles-5", Title: "Curious Reader", Description: "Read 5 articles", Icon: "📰", Category: model.CategoryLearning, Requirement: 5, XPReward: 30},
	{ID: "articles-20", Title: "News Enthusiast", Description: "Read 20 articles", Icon: "📰", Category: model.CategoryLearning, Requirement: 20, XPReward: 100},
	{ID: "articles-50", Title: "Current Affairs Expert", Description: "Read 50 articles", Icon: "📰", Category: model.CategoryLearning, Requirement: 50, XPReward: 250},

	// Practice
	{ID: "questions-25", Title: "First Steps", Description: "Answer 25 questions", Icon: "✏️", Category: model.CategoryPractice, Requirement: 25, XPReward: 50},
	{ID: "questions-100", Title: "Century Club", Description: "Answer 100 questions", Icon: "✏️", Category: model.CategoryPractice, Requirement: 100, XPReward: 150},
	{ID: "questions-500", Title: "Practice Pro", Description: "Answer 500 questions", Icon: "✏️", Category: model.CategoryPractice, Requirement: 500, XPReward: 400},
	{ID: "questions-1000", Title: "Question Master", Description: "Answer 1000 questions", Icon: "✏️", Category: model.CategoryPractice, Requirement: 1000, XPReward: 750},
	{ID: "quizzes-5", Title: "Quiz Taker", Description: "Complete 5 quizzes", Icon: "🎯", Category: model.CategoryPractice, Requirement: 5, XPReward: 50},
	{ID: "quizzes-20", Title: "Quiz Champion", Description: "Complete 20 quizzes", Icon: "🎯", Category: model.CategoryPractice, Requirement: 20, XPReward: 150},

	// Tests
	{ID: "tests-1", Title: "First Test", Description: "Complete your first mock test", Icon: "📝", Category: model.CategoryTest, Requirement: 1, XPReward: 100},
	{ID: "tests-5", Title: "Test Veteran", Description: "Complete 5 mock tests", Icon: "📝", Category: model.CategoryTest, Requirement: 5, XPReward: 250},
	{ID: "tests-10", Title: "Mock Master", Description: "Complete 10 mock tests", Icon: "📝", Category: model.CategoryTest, Requirement: 10, XPReward: 500},

	// Special
	{ID: "first-day", Title: "Welcome!", Description: "Start your CLAT preparation journey", Icon: "🎉", Category: model.CategorySpecial, Requirement: 1, XPReward: 25},
	{ID: "early-bird", Title: "Early Bird", Description: "Study before 7 AM", Icon: "🌅", Category: model.CategorySpecial, Requirement: 1, XPReward: 50},
	{ID: "night-owl", Title: "Night Owl", Description: "Study after 11 PM", Icon: "🦉", Category: model.CategorySpecial, Requirement: 1, XPReward: 50},
}

// ObservedStats carries the rolling statistics CheckAchievements evaluates.
// A zero field means "not observed" and leaves that badge group untouched.
type ObservedStats struct {
	CurrentStreak   int
	ArticlesRead    int
	QuestionsTotal  int
	QuizzesTaken    int
	TestsCompleted  int
	TotalDaysActive int
}

type AchievementService struct {
	Repo *repository.GamificationRepository

	now func() time.Time
}

func NewAchievementService(repo *repository.GamificationRepository) *AchievementService {
	return &AchievementService{Repo: repo, now: time.Now}
}

func (s *AchievementService) observedFor(def model.Achievement, stats ObservedStats, hour int) int {
	switch def.ID {
	case "first-day":
		if stats.TotalDaysActive >= 1 {
			return 1
		}
		return 0
	case "early-bird":
		if hour < 7 {
			return 1
		}
		return 0
	case "night-owl":
		if hour >= 23 {
			return 1
		}
		return 0
	}

	switch def.Category {
	case model.CategoryStreak:
		return stats.CurrentStreak
	case model.CategoryLearning:
		return stats.ArticlesRead
	case model.CategoryTest:
		return stats.TestsCompleted
	case model.CategoryPractice:
		if strings.HasPrefix(def.ID, "quizzes-") {
			return stats.QuizzesTaken
		}
		return stats.QuestionsTotal
	}
	return 0
}

// CheckAchievements folds the observed stats into the stored progress map.
// Unlocking is one-way and idempotent: a badge with a recorded unlock time
// is never touched again. At most one newly unlocked badge is returned;
// when several thresholds cross in the same call, later catalog entries
// overwrite the surfaced one, but every unlock is persisted.
func (s *AchievementService) CheckAchievements(ctx context.Context, stats ObservedStats) (model.AchievementProgress, *model.Achievement) {
	nowTime := s.now()
	hour := nowTime.Hour()

	var newly *model.Achievement

	progress, _ := s.Repo.UpdateAchievements(ctx, func(p model.AchievementProgress) {
		for i, def := range AchievementCatalog {
			observed := s.observedFor(def, stats, hour)
			if observed <= 0 {
				continue
			}

			state := p[def.ID]
			if state.UnlockedAt != nil {
				continue
			}

			// Progress never decreases once set.
			if observed > state.Progress {
				state.Progress = observed
			}
			if state.Progress >= def.Requirement {
				unlockedAt := nowTime
				state.UnlockedAt = &unlockedAt
				newly = &AchievementCatalog[i]
				monitoring.AchievementsUnlocked.Inc()
			}
			p[def.ID] = state
		}
	})

	return progress, newly
}

// Achievements merges the catalog with stored progress for display.
func (s *AchievementService) Achievements(ctx context.Context) []model.UserAchievement {
	progress := s.Repo.Achievements(ctx)

	out := make([]model.UserAchievement, len(AchievementCatalog))
	for i, def := range AchievementCatalog {
		state := progress[def.ID]
		out[i] = model.UserAchievement{
			Achievement: def,
			Progress:    state.Progress,
			UnlockedAt:  state.UnlockedAt,
		}
	}
	return out
}

// UnlockedCount tallies unlocked badges against the catalog size.
func (s *AchievementService) UnlockedCount(ctx context.Context) (unlocked, total int) {
	progress := s.Repo.Achievements(ctx)
	for _, def := range AchievementCatalog {
		if state, ok := progress[def.ID]; ok && state.UnlockedAt != nil {
			unlocked++
		}
	}
	return unlocked, len(AchievementCatalog)
}

// AchievementXP sums the rewards of every unlocked badge.
func (s *AchievementService) AchievementXP(ctx context.Context) int {
	progress := s.Repo.Achievements(ctx)
	sum := 0
	for _, def := range AchievementCatalog {
		if state, ok := progress[def.ID]; ok && state.UnlockedAt != nil {
			sum += def.XPReward
		}
	}
	return sum
}
