package cli

import (
	"fmt"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var flags planFlags
	var interactive, jsonOut bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a 7-day study plan",
		Example: `  studypal plan --subject Mathematics --hours 2 --scenario exam_prep
  studypal plan --subject Physics --topic Mechanics --topic Thermodynamics --score 0.45
  studypal plan --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request()

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				if err := runPlanForm(app.Catalog.Subjects(cmd.Context()), &req); err != nil {
					return err
				}
			}
			if err := requireSubject(req.Subject); err != nil {
				return err
			}

			plan, err := app.Plans.GeneratePlan(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			out := formatter.FormatPlan(plan)
			if interactive {
				return app.run(newPagerModel("Study plan: "+plan.Subject, out))
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the plan options in a form and page the result")
	addJSONFlag(cmd, &jsonOut)

	return cmd
}
