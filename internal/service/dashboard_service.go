package service

import (
	"context"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// DashboardService composes the home-screen view out of the gamification
// state and the analytics feed. It holds no state of its own.
type DashboardService struct {
	Streak       *StreakService
	Achievements *AchievementService
	Analytics    *AnalyticsService
}

func NewDashboardService(
	streak *StreakService,
	achievements *AchievementService,
	analytics *AnalyticsService,
) *DashboardService {
	return &DashboardService{
		Streak:       streak,
		Achievements: achievements,
		Analytics:    analytics,
	}
}

// DailyTarget reports progress against one fixed study goal.
type DailyTarget struct {
	Name     string `json:"name"`
	Current  int    `json:"current"`
	Target   int    `json:"target"`
	Complete bool   `json:"complete"`
}

type Dashboard struct {
	Streak               model.StreakState    `json:"streak"`
	Stats                model.StudyStats     `json:"stats"`
	Level                model.LevelInfo      `json:"level"`
	AchievementsUnlocked int                  `json:"achievementsUnlocked"`
	AchievementsTotal    int                  `json:"achievementsTotal"`
	DailyTargets         []DailyTarget        `json:"dailyTargets"`
	RecentActivity       []model.ActivityItem `json:"recentActivity"`
}

// Dashboard assembles the combined view. Reading the dashboard never
// transitions the streak; only recorded activity does that.
func (s *DashboardService) Dashboard(ctx context.Context) *Dashboard {
	streak := s.Streak.Streak(ctx)
	stats := s.Streak.Stats(ctx)
	unlocked, total := s.Achievements.UnlockedCount(ctx)

	targets := []DailyTarget{
		{
			Name:    "Questions answered",
			Current: stats.QuestionsToday,
			Target:  util.DailyQuestionsTarget,
		},
		{
			Name:    "Day streak",
			Current: streak.CurrentStreak,
			Target:  1,
		},
	}
	for i := range targets {
		targets[i].Complete = targets[i].Current >= targets[i].Target
	}

	return &Dashboard{
		Streak:               streak,
		Stats:                stats,
		Level:                LevelFor(stats.TotalXP),
		AchievementsUnlocked: unlocked,
		AchievementsTotal:    total,
		DailyTargets:         targets,
		RecentActivity:       s.Analytics.Summary(ctx).RecentActivity,
	}
}
