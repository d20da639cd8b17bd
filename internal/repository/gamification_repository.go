package repository

import (
	"context"
	"sync"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// GamificationRepository owns the three gamification documents: streak
// state, study stats, and achievement progress. They are deliberately
// separate documents updated independently; only same-document writes are
// serialized against each other.
type GamificationRepository struct {
	store DocumentStore

	streakMu       sync.Mutex
	statsMu        sync.Mutex
	achievementsMu sync.Mutex
}

func NewGamificationRepository(store DocumentStore) *GamificationRepository {
	return &GamificationRepository{store: store}
}

func (r *GamificationRepository) Streak(ctx context.Context) model.StreakState {
	state := ReadDoc(ctx, r.store, util.KeyStreak, model.DefaultStreakState())
	if len(state.WeeklyActivity) != 7 {
		// Normalize documents written before the 7-day window existed.
		normalized := make([]bool, 7)
		copy(normalized[7-min(7, len(state.WeeklyActivity)):], state.WeeklyActivity)
		state.WeeklyActivity = normalized
	}
	return state
}

func (r *GamificationRepository) UpdateStreak(ctx context.Context, mutate func(*model.StreakState)) (model.StreakState, error) {
	r.streakMu.Lock()
	defer r.streakMu.Unlock()

	state := r.Streak(ctx)
	mutate(&state)
	err := WriteDoc(ctx, r.store, util.KeyStreak, state)
	return state, err
}

func (r *GamificationRepository) Stats(ctx context.Context) model.StudyStats {
	return ReadDoc(ctx, r.store, util.KeyStudyStats, model.StudyStats{})
}

func (r *GamificationRepository) UpdateStats(ctx context.Context, mutate func(*model.StudyStats)) (model.StudyStats, error) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()

	stats := r.Stats(ctx)
	mutate(&stats)
	err := WriteDoc(ctx, r.store, util.KeyStudyStats, stats)
	return stats, err
}

func (r *GamificationRepository) Achievements(ctx context.Context) model.AchievementProgress {
	progress := ReadDoc(ctx, r.store, util.KeyAchievements, model.AchievementProgress{})
	if progress == nil {
		progress = model.AchievementProgress{}
	}
	return progress
}

func (r *GamificationRepository) UpdateAchievements(ctx context.Context, mutate func(model.AchievementProgress)) (model.AchievementProgress, error) {
	r.achievementsMu.Lock()
	defer r.achievementsMu.Unlock()

	progress := r.Achievements(ctx)
	mutate(progress)
	err := WriteDoc(ctx, r.store, util.KeyAchievements, progress)
	return progress, err
}
