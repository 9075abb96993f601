package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/spf13/cobra"
)

func newTopicsCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "topics [subject]",
		Aliases: []string{"subjects"},
		Short:   "List subjects and their topics",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := app.Catalog.Subjects(cmd.Context())
			if len(args) == 1 {
				var match []contract.SubjectInfo
				for _, s := range subjects {
					if strings.EqualFold(s.Name, strings.TrimSpace(args[0])) {
						match = append(match, s)
					}
				}
				if len(match) == 0 {
					return fmt.Errorf("unknown subject %q", args[0])
				}
				subjects = match
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), subjects)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubjects(subjects))
			return nil
		},
	}
	addJSONFlag(cmd, &jsonOut)
	return cmd
}
