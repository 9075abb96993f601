package cli

import (
	"fmt"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newModelCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Show classifier metrics and topic clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Models.ModelReport(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModelReport(report))
			return nil
		},
	}
	addJSONFlag(cmd, &jsonOut)
	return cmd
}
