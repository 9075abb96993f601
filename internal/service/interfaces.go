package service

import (
	"context"

	"github.com/alexanderramin/studypal/internal/corpus"
)

// SeedResult summarizes one seed run.
type SeedResult struct {
	Subjects  int
	Topics    int
	Passages  int
	QuizItems int
	Replaced  []string
}

// CorpusService moves a Content Store into and out of the content database.
type CorpusService interface {
	Seed(ctx context.Context, store *corpus.Store, source string) (*SeedResult, error)
	Load(ctx context.Context) (*corpus.Store, error)
}
