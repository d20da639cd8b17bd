package service

import (
	"context"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/internal/util"
)

// XP ladder tiers. The last tier is unbounded.
var levelTiers = []struct {
	Threshold int
	Title     string
}{
	{100, "Beginner"},
	{300, "Apprentice"},
	{600, "Scholar"},
	{1000, "Expert"},
	{1500, "Master"},
	{0, "Grandmaster"},
}

// StreakService maintains the daily activity streak and the study-stat
// counters. All date arithmetic is day-granularity in the server's local
// timezone.
type StreakService struct {
	Repo *repository.GamificationRepository

	now func() time.Time
}

func NewStreakService(repo *repository.GamificationRepository) *StreakService {
	return &StreakService{Repo: repo, now: time.Now}
}

// AdvanceStreak applies the day-boundary transition to a streak state.
// It is pure: callers decide when "today" is, which keeps date-rollover
// logic testable without touching the wall clock.
//
//   - first ever activity: streak starts at 1
//   - exactly one day since the last activity: streak continues
//   - more than one day: streak resets to 1
//   - same day: no-op
//
// On every real transition the weekly window shifts left one day and marks
// today active, and the longest streak is raised to cover the current one.
func AdvanceStreak(state model.StreakState, today string) model.StreakState {
	if state.LastActiveDate == today {
		return state
	}

	if state.LastActiveDate == "" {
		state.CurrentStreak = 1
		state.TotalDaysActive = 1
	} else {
		switch gap := util.DaysBetween(state.LastActiveDate, today); {
		case gap == 1:
			state.CurrentStreak++
			state.TotalDaysActive++
		case gap > 1:
			state.CurrentStreak = 1
			state.TotalDaysActive++
		default:
			// Unparsable stored date: treat like a first visit.
			state.CurrentStreak = 1
			state.TotalDaysActive++
		}
	}

	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	week := append([]bool{}, state.WeeklyActivity[1:]...)
	state.WeeklyActivity = append(week, true)
	state.LastActiveDate = today

	return state
}

// Touch records today's activity, transitioning the persisted streak at
// most once per calendar day. Repeated calls on the same day are no-ops.
func (s *StreakService) Touch(ctx context.Context) model.StreakState {
	today := util.DateString(s.now())

	current := s.Repo.Streak(ctx)
	if current.LastActiveDate == today {
		return current
	}

	updated, _ := s.Repo.UpdateStreak(ctx, func(state *model.StreakState) {
		*state = AdvanceStreak(*state, today)
	})
	return updated
}

// Streak returns the stored streak state without transitioning it.
func (s *StreakService) Streak(ctx context.Context) model.StreakState {
	return s.Repo.Streak(ctx)
}

// Stats returns the study stats, resetting the daily question counter on
// the first read of a new day.
func (s *StreakService) Stats(ctx context.Context) model.StudyStats {
	today := util.DateString(s.now())

	stats := s.Repo.Stats(ctx)
	if stats.LastQuestionDate == today {
		return stats
	}

	updated, _ := s.Repo.UpdateStats(ctx, func(st *model.StudyStats) {
		if st.LastQuestionDate != today {
			st.QuestionsToday = 0
			st.LastQuestionDate = today
		}
	})
	return updated
}

// RecordActivity bumps the counter for one activity and awards XP
// (DefaultActivityXP when xp <= 0). The stats document is persisted
// immediately and independently of the streak document.
func (s *StreakService) RecordActivity(ctx context.Context, activity model.ActivityType, xp int) model.StudyStats {
	if xp <= 0 {
		xp = util.DefaultActivityXP
	}
	today := util.DateString(s.now())

	updated, _ := s.Repo.UpdateStats(ctx, func(st *model.StudyStats) {
		if st.LastQuestionDate != today {
			st.QuestionsToday = 0
			st.LastQuestionDate = today
		}
		st.TotalXP += xp

		switch activity {
		case model.ActivityQuestion:
			st.QuestionsToday++
			st.QuestionsTotal++
		case model.ActivityArticle:
			st.ArticlesRead++
		case model.ActivityQuiz:
			st.QuizzesTaken++
		case model.ActivityTest:
			st.TestsCompleted++
		}
	})
	return updated
}

// RecordQuestions folds a batch of answered questions into the stats with a
// single write.
func (s *StreakService) RecordQuestions(ctx context.Context, n int) model.StudyStats {
	if n <= 0 {
		return s.Stats(ctx)
	}
	today := util.DateString(s.now())

	updated, _ := s.Repo.UpdateStats(ctx, func(st *model.StudyStats) {
		if st.LastQuestionDate != today {
			st.QuestionsToday = 0
			st.LastQuestionDate = today
		}
		st.QuestionsToday += n
		st.QuestionsTotal += n
		st.TotalXP += n * util.DefaultActivityXP
	})
	return updated
}

// LevelFor maps cumulative XP onto the six-tier ladder. Within the top tier
// NextLevelXP and Progress are both 0: there is no next level.
func LevelFor(totalXP int) model.LevelInfo {
	floor := 0
	for i, tier := range levelTiers {
		last := i == len(levelTiers)-1
		if last {
			return model.LevelInfo{Level: i + 1, Title: tier.Title}
		}
		if totalXP < tier.Threshold {
			return model.LevelInfo{
				Level:       i + 1,
				Title:       tier.Title,
				NextLevelXP: tier.Threshold,
				Progress:    totalXP - floor,
			}
		}
		floor = tier.Threshold
	}
	return model.LevelInfo{} // unreachable
}

// Level reports the ladder position for the stored stats.
func (s *StreakService) Level(ctx context.Context) model.LevelInfo {
	return LevelFor(s.Repo.Stats(ctx).TotalXP)
}
