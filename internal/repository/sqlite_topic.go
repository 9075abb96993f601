package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studypal/internal/db"
)

// SQLiteTopicRepo implements TopicRepo using a SQLite database.
type SQLiteTopicRepo struct {
	db db.DBTX
}

// NewSQLiteTopicRepo creates a new SQLiteTopicRepo.
func NewSQLiteTopicRepo(conn db.DBTX) *SQLiteTopicRepo {
	return &SQLiteTopicRepo{db: conn}
}

func (r *SQLiteTopicRepo) Create(ctx context.Context, t *TopicRecord) error {
	query := `INSERT INTO topics (id, subject_id, name, position) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.SubjectID, t.Name, t.Position); err != nil {
		return fmt.Errorf("inserting topic: %w", err)
	}
	return nil
}

// ListBySubject returns the subject's topics in position order.
func (r *SQLiteTopicRepo) ListBySubject(ctx context.Context, subjectID string) ([]*TopicRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, name, position FROM topics WHERE subject_id = ? ORDER BY position, name`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []*TopicRecord
	for rows.Next() {
		var t TopicRecord
		if err := rows.Scan(&t.ID, &t.SubjectID, &t.Name, &t.Position); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}
