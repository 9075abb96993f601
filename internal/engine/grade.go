package engine

import (
	"context"
	"sort"

	"github.com/alexanderramin/studypal/internal/contract"
)

// GradeQuiz scores a submission. Every question needs an answer; the call
// never touches the trained models.
func (e *Engine) GradeQuiz(ctx context.Context, req contract.GradeRequest) (result *contract.GradingResult, err error) {
	start := e.now()
	defer func() {
		fields := map[string]any{"questions": len(req.Quiz)}
		if result != nil {
			fields["score"] = result.Score
		}
		e.observe(ctx, "grade_quiz", start, err, fields)
	}()
	return Grade(req)
}

// Grade is the pure grading function behind GradeQuiz.
func Grade(req contract.GradeRequest) (*contract.GradingResult, error) {
	n := len(req.Quiz)
	if n == 0 {
		return nil, contract.Validationf("quiz has no questions")
	}

	unknown := make([]int, 0)
	for idx := range req.Answers {
		if idx < 0 || idx >= n {
			unknown = append(unknown, idx)
		}
	}
	if len(unknown) > 0 {
		sort.Ints(unknown)
		return nil, contract.Validationf("answers given for unknown question(s) %v", unknown)
	}

	var missing []int
	for i := 0; i < n; i++ {
		if _, ok := req.Answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, contract.IncompleteSubmission(missing)
	}

	res := &contract.GradingResult{
		Results:        make([]contract.QuestionResult, n),
		TotalQuestions: n,
	}
	for i, q := range req.Quiz {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, contract.Validationf("question %d: correct index %d out of range", i, q.CorrectIndex)
		}
		answer := req.Answers[i]
		if answer < 0 || answer >= len(q.Options) {
			return nil, contract.Validationf("question %d: answer %d out of range 0-%d", i, answer, len(q.Options)-1)
		}
		correct := answer == q.CorrectIndex
		if correct {
			res.CorrectCount++
		}
		res.Results[i] = contract.QuestionResult{
			QuestionIndex: i,
			IsCorrect:     correct,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectIndex,
			CorrectOption: q.Options[q.CorrectIndex],
		}
	}
	res.Score = float64(res.CorrectCount) / float64(n)
	return res, nil
}
