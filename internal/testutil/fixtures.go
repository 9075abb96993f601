package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/domain"
)

var testQuestionCounter atomic.Int64

// Subject options
type SubjectOption func(*corpus.SubjectData)

func WithResources(resources ...string) SubjectOption {
	return func(s *corpus.SubjectData) {
		s.Resources = append(s.Resources, resources...)
	}
}

// WithTopic adds a topic holding the given passages and quiz items.
func WithTopic(name string, passages []string, quiz ...domain.QuizItem) SubjectOption {
	return func(s *corpus.SubjectData) {
		td := corpus.TopicData{Name: name, Quiz: quiz}
		for _, p := range passages {
			td.Passages = append(td.Passages, domain.NewContentItem(s.Name, name, p))
		}
		s.Topics = append(s.Topics, td)
	}
}

// NewTestSubject builds subject data ready for corpus.Store.Add.
func NewTestSubject(name string, opts ...SubjectOption) corpus.SubjectData {
	s := corpus.SubjectData{Name: name}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Quiz item options
type QuizOption func(*domain.QuizItem)

func WithCorrectIndex(i int) QuizOption {
	return func(q *domain.QuizItem) {
		q.CorrectIndex = i
	}
}

func WithOptions(options ...string) QuizOption {
	return func(q *domain.QuizItem) {
		q.Options = options
	}
}

// NewTestQuizItem builds a valid four-option quiz item. An empty question is
// replaced by a unique generated one.
func NewTestQuizItem(question string, difficulty domain.Difficulty, opts ...QuizOption) domain.QuizItem {
	if question == "" {
		question = fmt.Sprintf("Generated question %d?", testQuestionCounter.Add(1))
	}
	q := domain.QuizItem{
		Question:     question,
		Options:      []string{"first", "second", "third", "fourth"},
		CorrectIndex: 0,
		Difficulty:   difficulty,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// NewTestStore builds a store from subjects and panics on invalid data.
func NewTestStore(subjects ...corpus.SubjectData) *corpus.Store {
	s := corpus.NewStore()
	for _, sd := range subjects {
		if err := s.Add(sd); err != nil {
			panic(fmt.Sprintf("testutil: adding subject %q: %v", sd.Name, err))
		}
	}
	return s
}
