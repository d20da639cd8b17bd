package model

import "time"

// ActivityType enumerates the counters RecordActivity can bump.
type ActivityType string

const (
	ActivityQuestion ActivityType = "question"
	ActivityArticle  ActivityType = "article"
	ActivityQuiz     ActivityType = "quiz"
	ActivityTest     ActivityType = "test"
)

// StreakState is the persisted day-granularity activity streak.
// WeeklyActivity is a 7-day sliding window, oldest first, index 6 = today.
// Invariant: LongestStreak >= CurrentStreak.
type StreakState struct {
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
	LastActiveDate  string `json:"lastActiveDate"` // "2006-01-02"; empty = never active
	TotalDaysActive int    `json:"totalDaysActive"`
	WeeklyActivity  []bool `json:"weeklyActivity"`
}

// DefaultStreakState returns the document used before any activity exists.
func DefaultStreakState() StreakState {
	return StreakState{WeeklyActivity: make([]bool, 7)}
}

// StudyStats are monotonically non-decreasing counters, except
// QuestionsToday which resets on the first load of a new day.
type StudyStats struct {
	QuestionsToday   int    `json:"questionsToday"`
	QuestionsTotal   int    `json:"questionsTotal"`
	ArticlesRead     int    `json:"articlesRead"`
	QuizzesTaken     int    `json:"quizzesTaken"`
	TestsCompleted   int    `json:"testsCompleted"`
	TotalXP          int    `json:"totalXP"`
	LastQuestionDate string `json:"lastQuestionDate,omitempty"`
}

// LevelInfo is the XP ladder tier derived from StudyStats.TotalXP. The top
// tier has no upper bound: NextLevelXP and Progress are both 0 there.
type LevelInfo struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	NextLevelXP int    `json:"nextLevelXP"`
	Progress    int    `json:"progress"`
}

// AchievementCategory is the closed set of badge groups.
type AchievementCategory string

const (
	CategoryStreak   AchievementCategory = "streak"
	CategoryLearning AchievementCategory = "learning"
	CategoryPractice AchievementCategory = "practice"
	CategoryTest     AchievementCategory = "test"
	CategorySpecial  AchievementCategory = "special"
)

// Achievement is one immutable catalog entry.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Requirement int                 `json:"requirement"`
	XPReward    int                 `json:"xpReward"`
}

// AchievementState is the per-achievement progress record. Once UnlockedAt
// is set neither field changes again.
type AchievementState struct {
	Progress   int        `json:"progress"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// AchievementProgress is the whole stored achievements document, keyed by
// achievement id.
type AchievementProgress map[string]AchievementState

// UserAchievement merges a catalog entry with its progress for API output.
type UserAchievement struct {
	Achievement
	Progress   int        `json:"progress"`
	UnlockedAt *time.Time `json:"unlockedAt"`
}
