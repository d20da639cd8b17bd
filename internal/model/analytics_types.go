package model

import "time"

// TimelinePoint is one charted test attempt.
type TimelinePoint struct {
	Date         string  `json:"date"`
	Accuracy     float64 `json:"accuracy"`
	ScorePercent float64 `json:"scorePercent"`
}

// SectionScore is the per-section rollup across all attempt sources.
type SectionScore struct {
	Section   string  `json:"section"`
	Accuracy  float64 `json:"accuracy"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
}

// WeakArea is a topic attempted at least twice with accuracy below the
// weak-area threshold.
type WeakArea struct {
	Topic     string  `json:"topic"`
	Section   string  `json:"section"`
	Accuracy  float64 `json:"accuracy"`
	Attempted int     `json:"attempted"`
}

// ActivityItem is one row of the merged recent-activity feed.
type ActivityItem struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // test or practice
	Title      string    `json:"title"`
	Score      float64   `json:"score"`
	TotalMarks float64   `json:"totalMarks"`
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration,omitempty"`
}

// AnalyticsSummary is the unified rollup over the three attempt logs,
// recomputed from scratch on every request.
type AnalyticsSummary struct {
	TotalAttempts    int             `json:"totalAttempts"`
	TotalQuestions   int             `json:"totalQuestions"`
	CorrectAnswers   int             `json:"correctAnswers"`
	IncorrectAnswers int             `json:"incorrectAnswers"`
	AverageAccuracy  float64         `json:"averageAccuracy"`
	TotalTimeSpent   int             `json:"totalTimeSpent"` // minutes
	BestScore        float64         `json:"bestScore"`      // percent
	PerformanceData  []TimelinePoint `json:"performanceData"`
	SectionScores    []SectionScore  `json:"sectionScores"`
	WeakAreas        []WeakArea      `json:"weakAreas"`
	RecentActivity   []ActivityItem  `json:"recentActivity"`
}
