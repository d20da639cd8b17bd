package util

// CLAT exam sections. Practice topics and test questions always belong to
// exactly one of these.
var CLATSections = []string{
	"Legal Reasoning",
	"Logical Reasoning",
	"English Language",
	"Quantitative Techniques",
	"Current Affairs",
}

// Marking scheme applied when a question carries no explicit marks.
const (
	MarksPerQuestion = 1.0
	NegativeMarks    = 0.25
)

// UnattemptedSentinel marks an explicit "no selection" in a stored answer
// set. Absence from the map means the same thing; both are excluded from
// the correct/incorrect tallies.
const UnattemptedSentinel = -1

// DefaultActivityXP is awarded per recorded activity unless the caller
// passes its own amount.
const DefaultActivityXP = 10

// Daily and weekly study targets shown on the dashboard.
const (
	DailyQuestionsTarget  = 50
	DailyStudyMinutes     = 120
	WeeklyQuestionsTarget = 350
	WeeklyTestsTarget     = 2
)

// Document keys for the persistent store. Each key maps to one whole JSON
// document that is read and written as a unit.
const (
	KeyBookmarks        = "clat_bookmarks"
	KeyTestAttempts     = "clat_test_attempts"
	KeyPracticeSessions = "clat_practice_sessions"
	KeyCAQuizAttempts   = "clat_ca_quiz_attempts"
	KeyStreak           = "clat_streak_data"
	KeyStudyStats       = "clat_study_stats"
	KeyAchievements     = "clat_achievements"
)
