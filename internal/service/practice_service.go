package service

import (
	"context"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/pkg/monitoring"
)

// PracticeService records topic practice sessions and keeps the per-topic
// aggregate cache current.
type PracticeService struct {
	PracticeRepo *repository.PracticeRepository
	Streak       *StreakService
	Achievements *AchievementService
}

func NewPracticeService(
	practiceRepo *repository.PracticeRepository,
	streak *StreakService,
	achievements *AchievementService,
) *PracticeService {
	return &PracticeService{
		PracticeRepo: practiceRepo,
		Streak:       streak,
		Achievements: achievements,
	}
}

type SubmitSessionRequest struct {
	TopicID string `json:"topicId" binding:"required"`
	Correct int    `json:"correct" binding:"min=0"`
	Total   int    `json:"total" binding:"required,min=1"`
}

type SubmitSessionResult struct {
	Session       model.PracticeSession `json:"session"`
	TopicStat     model.TopicStat       `json:"topicStat"`
	NewlyUnlocked *model.Achievement    `json:"newlyUnlocked,omitempty"`
}

func (s *PracticeService) SubmitSession(ctx context.Context, req SubmitSessionRequest) *SubmitSessionResult {
	session := model.PracticeSession{
		TopicID: req.TopicID,
		Date:    time.Now(),
		Correct: req.Correct,
		Total:   req.Total,
	}

	s.PracticeRepo.RecordSession(ctx, session)
	monitoring.AttemptsRecorded.WithLabelValues("practice").Inc()

	streak := s.Streak.Touch(ctx)
	stats := s.Streak.RecordQuestions(ctx, req.Total)

	_, newly := s.Achievements.CheckAchievements(ctx, ObservedStats{
		CurrentStreak:   streak.CurrentStreak,
		TotalDaysActive: streak.TotalDaysActive,
		QuestionsTotal:  stats.QuestionsTotal,
		QuizzesTaken:    stats.QuizzesTaken,
		TestsCompleted:  stats.TestsCompleted,
		ArticlesRead:    stats.ArticlesRead,
	})

	return &SubmitSessionResult{
		Session:       session,
		TopicStat:     s.PracticeRepo.Log(ctx).TopicStats[req.TopicID],
		NewlyUnlocked: newly,
	}
}

// Log exposes the whole practice document (sessions plus topic cache).
func (s *PracticeService) Log(ctx context.Context) model.PracticeLog {
	return s.PracticeRepo.Log(ctx)
}
