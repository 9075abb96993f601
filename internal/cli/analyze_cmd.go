package cli

import (
	"fmt"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var topics []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze <subject>",
		Short: "Summarize the study content of a subject",
		Long: `Analyze the passages of a subject: top keywords, part-of-speech counts and
readability (average sentence length, complexity score and level), per topic
and for the subject as a whole.`,
		Example: `  studypal analyze Physics
  studypal analyze Mathematics --topic Calculus --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.Catalog.AnalyzeSubject(cmd.Context(), args[0], topics)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), analysis)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Topic to analyze (repeatable; default all topics of the subject)")
	addJSONFlag(cmd, &jsonOut)
	return cmd
}
