package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
)

// FormatQuiz numbers the questions and lists their options as A-D. With
// reveal set, the correct option is highlighted.
func FormatQuiz(quiz []contract.QuizQuestion, reveal bool) string {
	var b strings.Builder
	for i, q := range quiz {
		fmt.Fprintf(&b, "%s %s  %s\n", StyleHeader.Render(fmt.Sprintf("Q%d.", i+1)), q.Question,
			DifficultyBadge(q.Difficulty, q.DifficultyConfident))
		for j, opt := range q.Options {
			line := fmt.Sprintf("    %s) %s", OptionLetter(j), opt)
			if reveal && j == q.CorrectIndex {
				line = StyleGreen.Render(line + "  ✔")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "    %s\n", Dim(q.Topic))
	}
	return b.String()
}

// FormatGrade renders a per-question verdict and the overall score.
func FormatGrade(result *contract.GradingResult, quiz []contract.QuizQuestion) string {
	var b strings.Builder
	b.WriteString(Header("Quiz results"))
	b.WriteString("\n")
	for _, r := range result.Results {
		question := ""
		if r.QuestionIndex < len(quiz) {
			question = quiz[r.QuestionIndex].Question
		}
		if r.IsCorrect {
			fmt.Fprintf(&b, "%s Q%d %s\n", StyleGreen.Render("✔"), r.QuestionIndex+1, question)
			continue
		}
		fmt.Fprintf(&b, "%s Q%d %s\n", StyleRed.Render("✘"), r.QuestionIndex+1, question)
		fmt.Fprintf(&b, "    %s %s, %s %s) %s\n",
			Dim("you answered"), OptionLetter(r.UserAnswer),
			Dim("correct"), OptionLetter(r.CorrectAnswer), r.CorrectOption)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Score %s  %d/%d\n", RenderScore(result.Score, 20), result.CorrectCount, result.TotalQuestions)
	return b.String()
}
