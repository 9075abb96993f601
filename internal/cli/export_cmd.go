package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		flags  planFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a plan and write its schedule as CSV or XLSX",
		Example: `  studypal export --subject Mathematics --hours 1.5 > plan.csv
  studypal export --subject Physics --format xlsx --out plan.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := requireSubject(flags.subject); err != nil {
				return err
			}

			plan, err := app.Plans.GeneratePlan(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			rows := contract.ExportRows(plan)

			if out == "" || out == "-" {
				return export.Write(cmd.OutOrStdout(), f, rows)
			}
			if err := writeFile(out, func(w io.Writer) error { return export.Write(w, f, rows) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", len(rows), out)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "Output format: csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, - for stdout")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
