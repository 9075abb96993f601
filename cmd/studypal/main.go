package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/studypal/internal/cli"
	"github.com/alexanderramin/studypal/internal/config"
	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/alexanderramin/studypal/internal/metrics"
	"github.com/alexanderramin/studypal/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	ctx := context.Background()

	app := &cli.App{
		CorpusDir: cfg.CorpusDir,
		HTTPAddr:  cfg.HTTPAddr,
	}

	var store *corpus.Store
	if cfg.DBPath != "" {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		app.Corpus = service.NewCorpusService(database, db.NewSQLiteUnitOfWork(database))
		store, err = app.Corpus.Load(ctx)
		switch {
		case errors.Is(err, service.ErrEmptyDatabase):
			// Fall through to the file corpus so `studypal seed` can run.
			slog.Warn("content database is empty, using file corpus", "db", cfg.DBPath)
			store = nil
		case err != nil:
			return err
		}
	}
	if store == nil {
		var err error
		store, err = loadFileCorpus(cfg.CorpusDir)
		if err != nil {
			return err
		}
	}

	observers := []engine.UseCaseObserver{}
	if cfg.LogUseCases {
		observers = append(observers, engine.NewLogUseCaseObserver(os.Stderr))
	}
	m := metrics.NewObserver()
	observers = append(observers, m)
	app.Metrics = m.Handler()

	e := engine.New(store, cfg.Engine(), observers...)
	app.Plans = e
	app.Quiz = e
	app.Catalog = e
	app.Models = e

	app.IsInteractive = func() bool {
		return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
			isatty.IsTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func loadFileCorpus(dir string) (*corpus.Store, error) {
	if dir == "" {
		return corpus.Embedded()
	}
	return corpus.LoadDir(dir)
}
