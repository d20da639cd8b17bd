package service

import (
	"context"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/internal/util"
	"clat_prep_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// CurrentAffairsService serves articles and records their quiz attempts as
// pre-aggregated score/total pairs.
type CurrentAffairsService struct {
	Content      *ContentService
	CAQuizRepo   *repository.CAQuizRepository
	Streak       *StreakService
	Achievements *AchievementService
}

func NewCurrentAffairsService(
	content *ContentService,
	caQuizRepo *repository.CAQuizRepository,
	streak *StreakService,
	achievements *AchievementService,
) *CurrentAffairsService {
	return &CurrentAffairsService{
		Content:      content,
		CAQuizRepo:   caQuizRepo,
		Streak:       streak,
		Achievements: achievements,
	}
}

type SubmitCAQuizRequest struct {
	Score int `json:"score" binding:"min=0"`
	Total int `json:"total" binding:"required,min=1"`
}

type SubmitCAQuizResult struct {
	Attempt       model.CAQuizAttempt `json:"attempt"`
	NewlyUnlocked *model.Achievement  `json:"newlyUnlocked,omitempty"`
}

func (s *CurrentAffairsService) SubmitQuiz(ctx context.Context, articleID string, req SubmitCAQuizRequest) (*SubmitCAQuizResult, error) {
	article, ok := s.Content.ArticleByID(articleID)
	if !ok {
		return nil, util.ErrArticleNotFound
	}

	attempt := model.CAQuizAttempt{
		AttemptID: uuid.NewString(),
		ArticleID: articleID,
		QuizID:    article.QuizID,
		Score:     req.Score,
		Total:     req.Total,
		Date:      time.Now(),
	}

	s.CAQuizRepo.Append(ctx, attempt)
	monitoring.AttemptsRecorded.WithLabelValues("quiz").Inc()

	streak := s.Streak.Touch(ctx)
	stats := s.Streak.RecordActivity(ctx, model.ActivityQuiz, 0)

	_, newly := s.Achievements.CheckAchievements(ctx, ObservedStats{
		CurrentStreak:   streak.CurrentStreak,
		TotalDaysActive: streak.TotalDaysActive,
		QuestionsTotal:  stats.QuestionsTotal,
		QuizzesTaken:    stats.QuizzesTaken,
		TestsCompleted:  stats.TestsCompleted,
		ArticlesRead:    stats.ArticlesRead,
	})

	return &SubmitCAQuizResult{Attempt: attempt, NewlyUnlocked: newly}, nil
}

// MarkArticleRead records an article-read activity.
func (s *CurrentAffairsService) MarkArticleRead(ctx context.Context, articleID string) (model.StudyStats, error) {
	if _, ok := s.Content.ArticleByID(articleID); !ok {
		return model.StudyStats{}, util.ErrArticleNotFound
	}
	s.Streak.Touch(ctx)
	return s.Streak.RecordActivity(ctx, model.ActivityArticle, 0), nil
}

func (s *CurrentAffairsService) Attempts(ctx context.Context) []model.CAQuizAttempt {
	return s.CAQuizRepo.Log(ctx).Attempts
}
