package cli

import (
	"net/http"

	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/alexanderramin/studypal/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Plans   engine.PlanService
	Quiz    engine.QuizService
	Catalog engine.CatalogService
	Models  engine.ModelService

	// Corpus is nil when no content database is configured.
	Corpus service.CorpusService
	// CorpusDir is the default YAML directory for seeding; empty means the
	// embedded corpus.
	CorpusDir string

	// Metrics, when set, is served at /metrics by `studypal serve`.
	Metrics  http.Handler
	HTTPAddr string

	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion. Nil uses a full-screen
	// tea.Program.
	RunProgram func(m tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) run(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "studypal" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studypal",
		Short:         "Adaptive study plans, calibrated quizzes and study tips",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newQuizCmd(app),
		newTopicsCmd(app),
		newAnalyzeCmd(app),
		newModelCmd(app),
		newExportCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
	)

	return root
}
