// Package engine is the Adaptive Study Plan Engine: it owns the trained
// models and turns plan requests into study plans and quiz submissions into
// grades.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/studypal/internal/classifier"
	"github.com/alexanderramin/studypal/internal/cluster"
	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/textfeat"
	"github.com/google/uuid"
)

// Config tunes model training and plan assembly.
type Config struct {
	Seed               int64
	Clusters           int
	Suggestions        int
	QuizSize           int
	TestFraction       float64
	ConfidenceMargin   float64
	ComplexityScale    domain.ComplexityScale
	ComplexityStrength float64
}

// DefaultConfig returns seed 42, five clusters, three suggestions and a
// five-question quiz.
func DefaultConfig() Config {
	return Config{
		Seed:               42,
		Clusters:           5,
		Suggestions:        3,
		QuizSize:           5,
		TestFraction:       0.2,
		ConfidenceMargin:   0.1,
		ComplexityScale:    domain.ComplexityLog,
		ComplexityStrength: 0.5,
	}
}

// Models are the trained classifier and clusterer, read-only once built.
type Models struct {
	Classifier *classifier.Classifier
	Clusters   *cluster.Model
}

// Engine is the explicitly constructed engine context. Models are trained
// once, on first use or on Warm; every later caller reuses the outcome,
// including a training error.
type Engine struct {
	store    *corpus.Store
	cfg      Config
	observer UseCaseObserver
	now      func() time.Time
	newID    func() string

	once       sync.Once
	models     *Models
	trainErr   error
	trainCount atomic.Int32
}

// New builds an engine over store. The store must not change afterwards.
func New(store *corpus.Store, cfg Config, observers ...UseCaseObserver) *Engine {
	return &Engine{
		store:    store,
		cfg:      cfg,
		observer: CombineObservers(observers...),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Store returns the content store the engine was built over.
func (e *Engine) Store() *corpus.Store {
	return e.store
}

// Warm trains the models if that has not happened yet.
func (e *Engine) Warm(ctx context.Context) error {
	_, err := e.Models(ctx)
	return err
}

// Models returns the trained models, training them on first call.
func (e *Engine) Models(ctx context.Context) (*Models, error) {
	e.once.Do(func() {
		e.trainCount.Add(1)
		start := e.now()
		e.models, e.trainErr = e.train()

		fields := map[string]any{"quiz_items": len(e.store.QuizItems())}
		if e.models != nil {
			m := e.models.Classifier.Evaluate()
			fields["accuracy"] = m.Accuracy
			fields["clusters"] = e.models.Clusters.K()
		}
		e.observe(ctx, "train_models", start, e.trainErr, fields)
	})
	return e.models, e.trainErr
}

func (e *Engine) train() (*Models, error) {
	quiz := e.store.QuizItems()
	examples := make([]classifier.Example, len(quiz))
	for i, q := range quiz {
		examples[i] = classifier.Example{Text: q.Question, Label: q.Difficulty}
	}
	ccfg := classifier.DefaultConfig()
	ccfg.Seed = e.cfg.Seed
	ccfg.TestFraction = e.cfg.TestFraction
	ccfg.ConfidenceMargin = e.cfg.ConfidenceMargin
	clf, err := classifier.Train(examples, ccfg)
	if err != nil {
		return nil, mapModelError(fmt.Errorf("train difficulty classifier: %w", err))
	}

	clusters, err := cluster.Fit(e.topicDocuments(), cluster.Config{
		K:           e.cfg.Clusters,
		Seed:        e.cfg.Seed,
		Suggestions: e.cfg.Suggestions,
	})
	if err != nil {
		return nil, mapModelError(fmt.Errorf("fit topic clusters: %w", err))
	}
	return &Models{Classifier: clf, Clusters: clusters}, nil
}

// topicDocuments builds one document per topic name from its passages, or
// from its quiz questions when it has none. Topics that share a name across
// subjects are merged.
func (e *Engine) topicDocuments() []cluster.Document {
	var docs []cluster.Document
	pos := make(map[string]int)
	for _, ref := range e.store.AllTopics() {
		var parts []string
		for _, it := range e.store.Items(ref.Subject, ref.Topic) {
			parts = append(parts, it.Text)
		}
		if len(parts) == 0 {
			for _, q := range e.store.QuizItemsFor(ref.Subject, []string{ref.Topic}) {
				parts = append(parts, q.Question)
			}
		}
		text := strings.Join(parts, " ")

		if i, ok := pos[ref.Topic]; ok {
			docs[i].Text += " " + text
			continue
		}
		pos[ref.Topic] = len(docs)
		docs = append(docs, cluster.Document{Topic: ref.Topic, Text: text})
	}
	return docs
}

func mapModelError(err error) error {
	switch {
	case errors.Is(err, classifier.ErrInsufficientData),
		errors.Is(err, cluster.ErrNoDocuments),
		errors.Is(err, textfeat.ErrEmptyVocabulary):
		return contract.InsufficientData(err)
	}
	return contract.Internal(err)
}
