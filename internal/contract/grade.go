package contract

// GradeRequest pairs a quiz with the submitted answers, keyed by question
// index.
type GradeRequest struct {
	Quiz    []QuizQuestion `json:"quiz"`
	Answers map[int]int    `json:"answers"`
}

// QuestionResult is the grading outcome of one question.
type QuestionResult struct {
	QuestionIndex int    `json:"question_index"`
	IsCorrect     bool   `json:"is_correct"`
	UserAnswer    int    `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	CorrectOption string `json:"correct_option"`
}

// GradingResult is computed per grading call and never stored.
type GradingResult struct {
	Results        []QuestionResult `json:"results"`
	Score          float64          `json:"score"`
	CorrectCount   int              `json:"correct_count"`
	TotalQuestions int              `json:"total_questions"`
}
