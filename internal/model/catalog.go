package model

// Catalog types mirror the static JSON datasets. They are loaded once at
// startup and treated as immutable reference data.

type Question struct {
	ID            string   `json:"id"`
	Section       string   `json:"section"`
	Topic         string   `json:"topic"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	PositiveMarks float64  `json:"positiveMarks,omitempty"`
	NegativeMarks float64  `json:"negativeMarks,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Test struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"` // full_length, sectional, previous_year
	QuestionIDs []string `json:"questionIds"`
	Duration    int      `json:"duration"` // minutes
	TotalMarks  float64  `json:"totalMarks"`
}

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Summary     string `json:"summary,omitempty"`
	PublishedAt string `json:"publishedAt"`
	QuizID      string `json:"quizId,omitempty"`
}

type Lesson struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

type LearningModule struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Section string   `json:"section"`
	Lessons []Lesson `json:"lessons"`
}

// Dataset wrappers matching the on-disk JSON document shapes.

type QuestionsData struct {
	Questions []Question `json:"questions"`
}

type TestsData struct {
	Tests []Test `json:"tests"`
}

type ArticlesData struct {
	Articles []Article `json:"articles"`
}

type ModulesData struct {
	Modules []LearningModule `json:"modules"`
}
