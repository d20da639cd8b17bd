package service

import (
	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// AnswerKeyEntry is one immutable answer-key record.
type AnswerKeyEntry struct {
	CorrectIndex  int
	PositiveMarks float64
	NegativeMarks float64
}

// ScoringResult is derived fresh on every request and never stored
// standalone.
type ScoringResult struct {
	Score          float64 `json:"score"`
	Correct        int     `json:"correct"`
	Incorrect      int     `json:"incorrect"`
	Unattempted    int     `json:"unattempted"`
	Accuracy       float64 `json:"accuracy"`
	TotalQuestions int     `json:"totalQuestions"`
}

// BuildAnswerKey derives an answer key from catalog questions, applying the
// standard marking scheme where a question carries no explicit marks.
func BuildAnswerKey(questions []model.Question) map[string]AnswerKeyEntry {
	key := make(map[string]AnswerKeyEntry, len(questions))
	for _, q := range questions {
		entry := AnswerKeyEntry{
			CorrectIndex:  q.CorrectAnswer,
			PositiveMarks: q.PositiveMarks,
			NegativeMarks: q.NegativeMarks,
		}
		if entry.PositiveMarks == 0 {
			entry.PositiveMarks = util.MarksPerQuestion
		}
		if entry.NegativeMarks == 0 {
			entry.NegativeMarks = util.NegativeMarks
		}
		key[q.ID] = entry
	}
	return key
}

// Score grades a submitted answer set against an answer key.
//
// A question is unattempted when it is absent from answers or carries the
// explicit -1 sentinel; both forms are excluded from the correct and
// incorrect tallies. Answers whose question id is missing from the key are
// skipped. The score is clamped at zero even when negative marking drives
// the raw total below it, and accuracy over zero questions is defined as 0.
// Score always returns a result; there are no error conditions.
func Score(answers map[string]int, key map[string]AnswerKeyEntry, totalQuestions int) ScoringResult {
	var correct, incorrect int
	var total float64

	for questionID, selected := range answers {
		if selected == util.UnattemptedSentinel {
			continue
		}
		entry, ok := key[questionID]
		if !ok {
			continue
		}
		if selected == entry.CorrectIndex {
			correct++
			total += entry.PositiveMarks
		} else {
			incorrect++
			total -= entry.NegativeMarks
		}
	}

	unattempted := totalQuestions - correct - incorrect
	if total < 0 {
		total = 0
	}

	accuracy := 0.0
	if totalQuestions > 0 {
		accuracy = util.Round2(float64(correct) / float64(totalQuestions) * 100)
	}

	return ScoringResult{
		Score:          total,
		Correct:        correct,
		Incorrect:      incorrect,
		Unattempted:    unattempted,
		Accuracy:       accuracy,
		TotalQuestions: totalQuestions,
	}
}

// PercentOf converts a raw score into a percentage of the total, 0 when the
// total is 0.
func PercentOf(score, total float64) float64 {
	if total == 0 {
		return 0
	}
	return util.Round2(score / total * 100)
}

// PerformanceLevel maps a percentage to a qualitative band for display.
func PerformanceLevel(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 75:
		return "Very Good"
	case percentage >= 60:
		return "Good"
	case percentage >= 40:
		return "Average"
	default:
		return "Needs Improvement"
	}
}
