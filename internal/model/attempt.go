package model

import "time"

// TestAttempt is an append-only log entry written when a mock test is
// submitted. Answers hold the raw selected option indexes keyed by question
// id; score and accuracy are the values computed at submission time.
type TestAttempt struct {
	AttemptID   string         `json:"attemptId"`
	TestID      string         `json:"testId"`
	StartTime   time.Time      `json:"startTime"`
	EndTime     time.Time      `json:"endTime"`
	Answers     map[string]int `json:"answers"`
	Score       float64        `json:"score"`
	Accuracy    float64        `json:"accuracy"`
	Correct     int            `json:"correct"`
	Incorrect   int            `json:"incorrect"`
	Unattempted int            `json:"unattempted"`
}

// TestAttemptLog is the whole stored document under KeyTestAttempts.
type TestAttemptLog struct {
	Attempts []TestAttempt `json:"attempts"`
}

// CAQuizAttempt records a current-affairs quiz as a pre-aggregated
// score/total pair.
type CAQuizAttempt struct {
	AttemptID string    `json:"attemptId"`
	ArticleID string    `json:"articleId"`
	QuizID    string    `json:"quizId,omitempty"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Date      time.Time `json:"date"`
}

type CAQuizAttemptLog struct {
	Attempts []CAQuizAttempt `json:"attempts"`
}

// TopicStat is the per-topic aggregate cache embedded in the practice
// document. Keys in PracticeLog.TopicStats use the "Section-Topic"
// composite form; the section is recovered by splitting on the first
// hyphen, which is lossy for hyphenated topic names.
type TopicStat struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

type PracticeSession struct {
	TopicID string    `json:"topicId"`
	Date    time.Time `json:"date"`
	Correct int       `json:"correct"`
	Total   int       `json:"total"`
}

type PracticeLog struct {
	TopicStats map[string]TopicStat `json:"topicStats"`
	Sessions   []PracticeSession    `json:"sessions"`
}

// Bookmarks is the stored bookmark document: plain id sets for articles and
// questions.
type Bookmarks struct {
	Articles    []string  `json:"articles"`
	Questions   []string  `json:"questions"`
	LastUpdated time.Time `json:"lastUpdated"`
}
