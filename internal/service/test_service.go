package service

import (
	"context"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// TestService runs the mock-test submission flow: grade the answer set,
// append the attempt to the log, bump the activity counters, and re-check
// achievements against the fresh stats.
type TestService struct {
	Content      *ContentService
	AttemptRepo  *repository.AttemptRepository
	Streak       *StreakService
	Achievements *AchievementService
}

func NewTestService(
	content *ContentService,
	attemptRepo *repository.AttemptRepository,
	streak *StreakService,
	achievements *AchievementService,
) *TestService {
	return &TestService{
		Content:      content,
		AttemptRepo:  attemptRepo,
		Streak:       streak,
		Achievements: achievements,
	}
}

type SubmitTestRequest struct {
	Answers   map[string]int `json:"answers" binding:"required"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
}

type SubmitTestResult struct {
	Attempt       model.TestAttempt  `json:"attempt"`
	Result        ScoringResult      `json:"result"`
	Performance   string             `json:"performance"`
	NewlyUnlocked *model.Achievement `json:"newlyUnlocked,omitempty"`
}

func (s *TestService) SubmitTest(ctx context.Context, testID string, req SubmitTestRequest) (*SubmitTestResult, error) {
	questions, err := s.Content.TestQuestions(testID)
	if err != nil {
		return nil, err
	}
	test, _ := s.Content.TestByID(testID)

	key := BuildAnswerKey(questions)
	result := Score(req.Answers, key, len(test.QuestionIDs))

	endTime := req.EndTime
	if endTime.IsZero() {
		endTime = time.Now()
	}

	attempt := model.TestAttempt{
		AttemptID:   uuid.NewString(),
		TestID:      testID,
		StartTime:   req.StartTime,
		EndTime:     endTime,
		Answers:     req.Answers,
		Score:       result.Score,
		Accuracy:    result.Accuracy,
		Correct:     result.Correct,
		Incorrect:   result.Incorrect,
		Unattempted: result.Unattempted,
	}

	// Best-effort persistence: a failed write is logged by the repository
	// and the computed result is still returned.
	s.AttemptRepo.Append(ctx, attempt)
	monitoring.AttemptsRecorded.WithLabelValues("test").Inc()

	streak := s.Streak.Touch(ctx)
	stats := s.Streak.RecordActivity(ctx, model.ActivityTest, 0)

	_, newly := s.Achievements.CheckAchievements(ctx, ObservedStats{
		CurrentStreak:   streak.CurrentStreak,
		TotalDaysActive: streak.TotalDaysActive,
		QuestionsTotal:  stats.QuestionsTotal,
		QuizzesTaken:    stats.QuizzesTaken,
		TestsCompleted:  stats.TestsCompleted,
		ArticlesRead:    stats.ArticlesRead,
	})

	return &SubmitTestResult{
		Attempt:       attempt,
		Result:        result,
		Performance:   PerformanceLevel(PercentOf(result.Score, test.TotalMarks)),
		NewlyUnlocked: newly,
	}, nil
}

func (s *TestService) Attempts(ctx context.Context) []model.TestAttempt {
	return s.AttemptRepo.Log(ctx).Attempts
}

func (s *TestService) AttemptByID(ctx context.Context, attemptID string) (*model.TestAttempt, error) {
	return s.AttemptRepo.FindByID(ctx, attemptID)
}
