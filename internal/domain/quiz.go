package domain

import "fmt"

// OptionCount is the number of answer options every quiz item carries.
const OptionCount = 4

// QuizItem is a multiple-choice question with a ground-truth difficulty label.
type QuizItem struct {
	Question     string
	Options      []string
	CorrectIndex int
	Subject      string
	Topic        string
	Difficulty   Difficulty
}

// Validate checks the structural invariants of a quiz item.
func (q *QuizItem) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is required")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %q: expected %d options, got %d", q.Question, OptionCount, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range", q.Question, q.CorrectIndex)
	}
	if !ValidDifficulties[string(q.Difficulty)] {
		return fmt.Errorf("question %q: invalid difficulty %q", q.Question, q.Difficulty)
	}
	return nil
}

// CorrectOption returns the text of the correct option.
func (q *QuizItem) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
