package service

import (
	"context"
	"testing"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func testContent() *ContentService {
	content := NewContentService(nil)

	questions := []model.Question{
		{ID: "q1", Section: "Legal Reasoning", Topic: "Contracts", CorrectAnswer: 0},
		{ID: "q2", Section: "Legal Reasoning", Topic: "Contracts", CorrectAnswer: 1},
		{ID: "q3", Section: "English Language", Topic: "Comprehension", CorrectAnswer: 2},
	}
	for _, q := range questions {
		content.questions[q.ID] = q
		content.questionOrder = append(content.questionOrder, q.ID)
	}

	test := model.Test{
		ID:          "t1",
		Title:       "Mock Test 1",
		QuestionIDs: []string{"q1", "q2", "q3"},
		Duration:    120,
		TotalMarks:  3,
	}
	content.tests[test.ID] = test
	content.testOrder = append(content.testOrder, test.ID)

	return content
}

func newAnalyticsFixture() (*AnalyticsService, *repository.AttemptRepository, *repository.PracticeRepository, *repository.CAQuizRepository) {
	store := repository.NewMemoryDocumentStore()
	attempts := repository.NewAttemptRepository(store)
	practice := repository.NewPracticeRepository(store)
	caQuiz := repository.NewCAQuizRepository(store)
	svc := NewAnalyticsService(attempts, practice, caQuiz, testContent())
	return svc, attempts, practice, caQuiz
}

func TestSummaryRederivesCorrectnessFromCatalog(t *testing.T) {
	svc, attempts, _, _ := newAnalyticsFixture()
	ctx := context.Background()

	attempts.Append(ctx, model.TestAttempt{
		AttemptID: "a1",
		TestID:    "t1",
		EndTime:   time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Answers:   map[string]int{"q1": 0, "q2": 0, "q3": 2},
		Score:     1.75,
	})

	summary := svc.Summary(ctx)

	assert.Equal(t, 3, summary.TotalQuestions)
	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 1, summary.IncorrectAnswers)
	assert.Equal(t, 66.67, summary.AverageAccuracy)
	assert.Equal(t, 120, summary.TotalTimeSpent)
}

func TestSummarySkipsDanglingIDs(t *testing.T) {
	svc, attempts, _, _ := newAnalyticsFixture()
	ctx := context.Background()

	// The attempt references a test and a question that no longer exist.
	attempts.Append(ctx, model.TestAttempt{
		AttemptID: "gone",
		TestID:    "deleted-test",
		Answers:   map[string]int{"q1": 0},
	})
	attempts.Append(ctx, model.TestAttempt{
		AttemptID: "partial",
		TestID:    "t1",
		Answers:   map[string]int{"q1": 0, "deleted-question": 1},
	})

	summary := svc.Summary(ctx)

	assert.Equal(t, 2, summary.TotalAttempts)
	assert.Equal(t, 1, summary.CorrectAnswers)
	assert.Equal(t, 0, summary.IncorrectAnswers)
}

func TestSummaryTreatsSentinelAnswersAsUnattempted(t *testing.T) {
	svc, attempts, _, _ := newAnalyticsFixture()
	ctx := context.Background()

	// q1 carries the explicit -1 no-selection sentinel, q2 is a real wrong
	// answer. The sentinel must not count as attempted or incorrect, the
	// same classification Score applies.
	attempts.Append(ctx, model.TestAttempt{
		AttemptID: "a1",
		TestID:    "t1",
		Answers:   map[string]int{"q1": -1, "q2": 0},
	})

	summary := svc.Summary(ctx)

	assert.Equal(t, 1, summary.TotalQuestions)
	assert.Equal(t, 0, summary.CorrectAnswers)
	assert.Equal(t, 1, summary.IncorrectAnswers)

	for _, s := range summary.SectionScores {
		if s.Section == "Legal Reasoning" {
			assert.Equal(t, 1, s.Attempted)
		}
	}
}

func TestSummaryCountsCAQuizzesUnderCurrentAffairs(t *testing.T) {
	svc, _, _, caQuiz := newAnalyticsFixture()
	ctx := context.Background()

	caQuiz.Append(ctx, model.CAQuizAttempt{AttemptID: "c1", Score: 4, Total: 5})

	summary := svc.Summary(ctx)

	assert.Equal(t, 5, summary.TotalQuestions)
	assert.Equal(t, 4, summary.CorrectAnswers)

	var ca model.SectionScore
	for _, s := range summary.SectionScores {
		if s.Section == "Current Affairs" {
			ca = s
		}
	}
	assert.Equal(t, 5, ca.Attempted)
	assert.Equal(t, 4, ca.Correct)
	assert.Equal(t, 80.0, ca.Accuracy)
}

func TestWeakAreasRequireTwoAttemptsAndLowAccuracy(t *testing.T) {
	svc, _, practice, _ := newAnalyticsFixture()
	ctx := context.Background()

	// One bad attempt is not enough to flag a topic.
	practice.RecordSession(ctx, model.PracticeSession{TopicID: "Legal Reasoning-Torts", Correct: 0, Total: 1})
	// Two attempts at 25% flags the topic.
	practice.RecordSession(ctx, model.PracticeSession{TopicID: "English Language-Grammar", Correct: 0, Total: 2})
	practice.RecordSession(ctx, model.PracticeSession{TopicID: "English Language-Grammar", Correct: 1, Total: 2})
	// High accuracy never flags.
	practice.RecordSession(ctx, model.PracticeSession{TopicID: "Legal Reasoning-Contracts", Correct: 9, Total: 10})

	summary := svc.Summary(ctx)

	assert.Len(t, summary.WeakAreas, 1)
	assert.Equal(t, "Grammar", summary.WeakAreas[0].Topic)
	assert.Equal(t, "English Language", summary.WeakAreas[0].Section)
	assert.Equal(t, 25.0, summary.WeakAreas[0].Accuracy)
	assert.Equal(t, 4, summary.WeakAreas[0].Attempted)
}

func TestWeakAreasSortedWorstFirst(t *testing.T) {
	svc, _, practice, _ := newAnalyticsFixture()
	ctx := context.Background()

	practice.RecordSession(ctx, model.PracticeSession{TopicID: "Legal Reasoning-Torts", Correct: 1, Total: 2})
	practice.RecordSession(ctx, model.PracticeSession{TopicID: "English Language-Grammar", Correct: 0, Total: 2})

	summary := svc.Summary(ctx)

	assert.Len(t, summary.WeakAreas, 2)
	assert.Equal(t, "Grammar", summary.WeakAreas[0].Topic)
	assert.Equal(t, "Torts", summary.WeakAreas[1].Topic)
}

func TestTimelineKeepsLastSevenAttempts(t *testing.T) {
	svc, attempts, _, _ := newAnalyticsFixture()
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		attempts.Append(ctx, model.TestAttempt{
			AttemptID: string(rune('a' + i)),
			TestID:    "t1",
			EndTime:   time.Date(2026, 8, 20+i, 9, 0, 0, 0, time.UTC),
			Accuracy:  float64(i * 10),
		})
	}

	summary := svc.Summary(ctx)

	assert.Len(t, summary.PerformanceData, 7)
	assert.Equal(t, "Aug 22", summary.PerformanceData[0].Date)
	assert.Equal(t, 20.0, summary.PerformanceData[0].Accuracy)
	assert.Equal(t, "Aug 28", summary.PerformanceData[6].Date)
}

func TestRecentActivityMergedNewestFirst(t *testing.T) {
	svc, attempts, practice, _ := newAnalyticsFixture()
	ctx := context.Background()

	attempts.Append(ctx, model.TestAttempt{
		AttemptID: "a1",
		TestID:    "t1",
		EndTime:   time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		Score:     2,
	})
	practice.RecordSession(ctx, model.PracticeSession{
		TopicID: "Legal Reasoning-Contracts",
		Date:    time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Correct: 3,
		Total:   5,
	})

	summary := svc.Summary(ctx)

	assert.Len(t, summary.RecentActivity, 2)
	assert.Equal(t, "practice", summary.RecentActivity[0].Type)
	assert.Equal(t, "Contracts Practice", summary.RecentActivity[0].Title)
	assert.Equal(t, "test", summary.RecentActivity[1].Type)
	assert.Equal(t, "Mock Test 1", summary.RecentActivity[1].Title)
}

func TestRecentActivityTruncatedToTen(t *testing.T) {
	svc, attempts, _, _ := newAnalyticsFixture()
	ctx := context.Background()

	for i := 0; i < 14; i++ {
		attempts.Append(ctx, model.TestAttempt{
			AttemptID: string(rune('a' + i)),
			TestID:    "t1",
			EndTime:   time.Date(2026, 8, 1+i, 9, 0, 0, 0, time.UTC),
		})
	}

	summary := svc.Summary(ctx)

	assert.Len(t, summary.RecentActivity, 10)
	assert.Equal(t, string(rune('a'+13)), summary.RecentActivity[0].ID)
}
