package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load study content into the content database",
		Long: `Read subject YAML files from --dir (or the built-in content when no
directory is given) and write them to the database named by STUDYPAL_DB.
Subjects that already exist are replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Corpus == nil {
				return errors.New("no content database configured; set STUDYPAL_DB")
			}
			dir = domain.CoalesceStr(dir, app.CorpusDir)

			var (
				store  *corpus.Store
				source = "embedded"
				err    error
			)
			if dir != "" {
				store, err = corpus.LoadDir(dir)
				source = dir
			} else {
				store, err = corpus.Embedded()
			}
			if err != nil {
				return err
			}

			res, err := app.Corpus.Seed(cmd.Context(), store, source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d subjects, %d topics, %d passages, %d quiz items from %s\n",
				formatter.StyleGreen.Render("Seeded"), res.Subjects, res.Topics, res.Passages, res.QuizItems, source)
			if len(res.Replaced) > 0 {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("replaced:"), strings.Join(res.Replaced, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of subject YAML files")
	return cmd
}
