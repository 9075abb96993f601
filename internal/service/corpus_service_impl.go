package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyDatabase is returned by Load when no subject has been seeded.
var ErrEmptyDatabase = errors.New("content database is empty; run `studypal seed` first")

type corpusService struct {
	conn db.DBTX
	uow  db.UnitOfWork
}

// NewCorpusService reads through conn and writes inside uow transactions.
func NewCorpusService(conn db.DBTX, uow db.UnitOfWork) CorpusService {
	return &corpusService{conn: conn, uow: uow}
}

// Seed writes every subject of store in one transaction. A subject that is
// already stored under the same name (ignoring case) is replaced as a whole.
func (s *corpusService) Seed(ctx context.Context, store *corpus.Store, source string) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		subjects := repository.NewSQLiteSubjectRepo(tx)
		topics := repository.NewSQLiteTopicRepo(tx)
		content := repository.NewSQLiteContentRepo(tx)
		quiz := repository.NewSQLiteQuizRepo(tx)

		for pos, name := range store.Subjects() {
			sd, _ := store.Subject(name)

			existing, err := subjects.GetByName(ctx, name)
			switch {
			case err == nil:
				if err := subjects.Delete(ctx, existing.ID); err != nil {
					return err
				}
				result.Replaced = append(result.Replaced, existing.Name)
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}

			rec := &repository.SubjectRecord{
				ID:        uuid.NewString(),
				Name:      sd.Name,
				Position:  pos,
				Source:    source,
				Resources: sd.Resources,
			}
			if err := subjects.Create(ctx, rec); err != nil {
				return fmt.Errorf("creating subject %q: %w", sd.Name, err)
			}
			result.Subjects++

			for tpos, td := range sd.Topics {
				topic := &repository.TopicRecord{
					ID:        uuid.NewString(),
					SubjectID: rec.ID,
					Name:      td.Name,
					Position:  tpos,
				}
				if err := topics.Create(ctx, topic); err != nil {
					return fmt.Errorf("creating topic %q: %w", td.Name, err)
				}
				result.Topics++

				for i, p := range td.Passages {
					if err := content.Create(ctx, topic.ID, i, p); err != nil {
						return fmt.Errorf("creating passage %d of %q: %w", i, td.Name, err)
					}
					result.Passages++
				}
				for i := range td.Quiz {
					if err := quiz.Create(ctx, topic.ID, i, &td.Quiz[i]); err != nil {
						return fmt.Errorf("creating quiz item %q: %w", td.Quiz[i].Question, err)
					}
					result.QuizItems++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("corpus seeded",
		"source", source,
		"subjects", result.Subjects,
		"topics", result.Topics,
		"passages", result.Passages,
		"quiz_items", result.QuizItems,
		"replaced", len(result.Replaced),
	)
	return result, nil
}

// Load rebuilds a Content Store from the database, subjects in position order.
func (s *corpusService) Load(ctx context.Context) (*corpus.Store, error) {
	subjects := repository.NewSQLiteSubjectRepo(s.conn)
	topics := repository.NewSQLiteTopicRepo(s.conn)
	content := repository.NewSQLiteContentRepo(s.conn)
	quiz := repository.NewSQLiteQuizRepo(s.conn)

	records, err := subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDatabase
	}

	store := corpus.NewStore()
	for _, rec := range records {
		sd := corpus.SubjectData{Name: rec.Name, Resources: rec.Resources}

		topicRecs, err := topics.ListBySubject(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		for _, tr := range topicRecs {
			passages, err := content.ListByTopic(ctx, tr.ID)
			if err != nil {
				return nil, err
			}
			items, err := quiz.ListByTopic(ctx, tr.ID)
			if err != nil {
				return nil, err
			}
			sd.Topics = append(sd.Topics, corpus.TopicData{Name: tr.Name, Passages: passages, Quiz: items})
		}

		if err := store.Add(sd); err != nil {
			return nil, fmt.Errorf("loading subject %q: %w", rec.Name, err)
		}
	}
	return store, nil
}
