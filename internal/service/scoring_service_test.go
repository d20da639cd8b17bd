package service

import (
	"testing"

	"clat_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func standardKey(n int) map[string]AnswerKeyEntry {
	key := make(map[string]AnswerKeyEntry, n)
	ids := []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8"}
	for i := 0; i < n; i++ {
		key[ids[i]] = AnswerKeyEntry{CorrectIndex: 0, PositiveMarks: 1, NegativeMarks: 0.25}
	}
	return key
}

func TestScoreNegativeMarking(t *testing.T) {
	key := standardKey(4)

	// 2 correct, 2 incorrect: 2*1 - 2*0.25 = 1.5
	result := Score(map[string]int{"q1": 0, "q2": 0, "q3": 1, "q4": 2}, key, 4)

	assert.Equal(t, 1.5, result.Score)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 2, result.Incorrect)
	assert.Equal(t, 0, result.Unattempted)
	assert.Equal(t, 50.0, result.Accuracy)
}

func TestScoreClampsAtZero(t *testing.T) {
	key := standardKey(4)

	result := Score(map[string]int{"q1": 1, "q2": 1, "q3": 1, "q4": 2}, key, 4)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 4, result.Incorrect)
}

func TestScoreUnattemptedForms(t *testing.T) {
	key := standardKey(4)

	// q3 carries the explicit sentinel, q4 is absent; both are unattempted.
	result := Score(map[string]int{"q1": 0, "q2": 1, "q3": -1}, key, 4)

	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Incorrect)
	assert.Equal(t, 2, result.Unattempted)
	assert.Equal(t, 4, result.Correct+result.Incorrect+result.Unattempted)
}

func TestScoreSkipsUnknownQuestions(t *testing.T) {
	key := standardKey(2)

	result := Score(map[string]int{"q1": 0, "ghost": 0}, key, 2)

	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 0, result.Incorrect)
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreEmptySubmission(t *testing.T) {
	result := Score(map[string]int{}, standardKey(4), 4)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 4, result.Unattempted)
	assert.Equal(t, 0.0, result.Accuracy)
}

func TestScoreZeroQuestions(t *testing.T) {
	result := Score(map[string]int{}, map[string]AnswerKeyEntry{}, 0)

	assert.Equal(t, 0.0, result.Accuracy)
	assert.Equal(t, 0, result.Unattempted)
}

func TestScoreAccuracyRounding(t *testing.T) {
	key := standardKey(3)

	// 1/3 = 33.333... rounds to 33.33
	result := Score(map[string]int{"q1": 0}, key, 3)

	assert.Equal(t, 33.33, result.Accuracy)
}

func TestScoreSingleQuestionScenarios(t *testing.T) {
	key := map[string]AnswerKeyEntry{
		"q1": {CorrectIndex: 0, PositiveMarks: 1, NegativeMarks: 0.25},
	}

	right := Score(map[string]int{"q1": 0}, key, 1)
	assert.Equal(t, ScoringResult{Score: 1, Correct: 1, Accuracy: 100, TotalQuestions: 1}, right)

	wrong := Score(map[string]int{"q1": 1}, key, 1)
	assert.Equal(t, ScoringResult{Score: 0, Incorrect: 1, Accuracy: 0, TotalQuestions: 1}, wrong)
}

func TestBuildAnswerKeyDefaults(t *testing.T) {
	key := BuildAnswerKey([]model.Question{
		{ID: "a", CorrectAnswer: 2},
		{ID: "b", CorrectAnswer: 1, PositiveMarks: 2, NegativeMarks: 0.5},
	})

	assert.Equal(t, 1.0, key["a"].PositiveMarks)
	assert.Equal(t, 0.25, key["a"].NegativeMarks)
	assert.Equal(t, 2.0, key["b"].PositiveMarks)
	assert.Equal(t, 0.5, key["b"].NegativeMarks)
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 75.0, PercentOf(15, 20))
	assert.Equal(t, 0.0, PercentOf(5, 0))
}

func TestPerformanceLevelBands(t *testing.T) {
	assert.Equal(t, "Excellent", PerformanceLevel(90))
	assert.Equal(t, "Very Good", PerformanceLevel(75))
	assert.Equal(t, "Good", PerformanceLevel(60))
	assert.Equal(t, "Average", PerformanceLevel(40))
	assert.Equal(t, "Needs Improvement", PerformanceLevel(39.99))
}
