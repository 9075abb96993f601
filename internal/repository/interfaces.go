package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

// SubjectRecord is a stored subject with its ordered resource list.
type SubjectRecord struct {
	ID        string
	Name      string
	Position  int
	Source    string
	Resources []string
	CreatedAt time.Time
}

// TopicRecord is a stored topic of a subject.
type TopicRecord struct {
	ID        string
	SubjectID string
	Name      string
	Position  int
}

type SubjectRepo interface {
	Create(ctx context.Context, s *SubjectRecord) error
	GetByName(ctx context.Context, name string) (*SubjectRecord, error)
	List(ctx context.Context) ([]*SubjectRecord, error)
	Delete(ctx context.Context, id string) error
}

type TopicRepo interface {
	Create(ctx context.Context, t *TopicRecord) error
	ListBySubject(ctx context.Context, subjectID string) ([]*TopicRecord, error)
}

type ContentRepo interface {
	Create(ctx context.Context, topicID string, position int, item domain.ContentItem) error
	ListByTopic(ctx context.Context, topicID string) ([]domain.ContentItem, error)
	CountAll(ctx context.Context) (int, error)
}

type QuizRepo interface {
	Create(ctx context.Context, topicID string, position int, q *domain.QuizItem) error
	ListByTopic(ctx context.Context, topicID string) ([]domain.QuizItem, error)
	CountAll(ctx context.Context) (int, error)
}
