package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take and grade calibrated quizzes",
	}
	cmd.AddCommand(newQuizTakeCmd(app), newQuizGradeCmd(app))
	return cmd
}

func newQuizTakeCmd(app *App) *cobra.Command {
	var (
		subject string
		topics  []string
		score   scoreValue
		reveal  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Draw a quiz and answer it in the terminal",
		Long: `Draw a quiz for a subject. On an interactive terminal each question is
asked in turn and the answers are graded. Otherwise the quiz is printed;
save it with --json and grade it later with "studypal quiz grade".`,
		Example: `  studypal quiz take --subject Mathematics --score 0.8
  studypal quiz take --subject Physics --json > quiz.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSubject(subject); err != nil {
				return err
			}
			quiz, err := app.Quiz.DrawQuiz(cmd.Context(), contract.QuizRequest{
				Subject:         subject,
				Topics:          topics,
				RecentQuizScore: score.Ptr(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, quiz)
			}
			if len(quiz) == 0 {
				fmt.Fprintln(out, formatter.Dim("No quiz questions available for this selection."))
				return nil
			}
			if !app.interactive() {
				fmt.Fprint(out, formatter.FormatQuiz(quiz, reveal))
				return nil
			}

			answers, err := runQuizForm(quiz)
			if err != nil {
				return err
			}
			result, err := app.Quiz.GradeQuiz(cmd.Context(), contract.GradeRequest{Quiz: quiz, Answers: answers})
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatGrade(result, quiz))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject to draw questions from")
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Restrict to a topic (repeatable)")
	cmd.Flags().Var(&score, "score", "Most recent quiz score in [0,1]")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Mark the correct options when printing")
	addJSONFlag(cmd, &jsonOut)

	return cmd
}

func newQuizGradeCmd(app *App) *cobra.Command {
	var (
		quizFile   string
		answersArg string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade answers against a saved quiz",
		Example: `  studypal quiz grade --quiz quiz.json --answers "B,A,,D"
  studypal quiz grade --quiz quiz.json --answers "2,1,3,4"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(quizFile)
			if err != nil {
				return fmt.Errorf("reading quiz: %w", err)
			}
			var quiz []contract.QuizQuestion
			if err := json.Unmarshal(data, &quiz); err != nil {
				return fmt.Errorf("decoding quiz %s: %w", quizFile, err)
			}
			answers, err := parseAnswers(answersArg)
			if err != nil {
				return err
			}

			result, err := app.Quiz.GradeQuiz(cmd.Context(), contract.GradeRequest{Quiz: quiz, Answers: answers})
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGrade(result, quiz))
			return nil
		},
	}

	cmd.Flags().StringVar(&quizFile, "quiz", "", "Quiz JSON file written by quiz take --json")
	cmd.Flags().StringVar(&answersArg, "answers", "", "Comma-separated answers, as letters or 1-based numbers")
	_ = cmd.MarkFlagRequired("quiz")
	addJSONFlag(cmd, &jsonOut)

	return cmd
}
