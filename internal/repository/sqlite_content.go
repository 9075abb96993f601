package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/google/uuid"
)

// SQLiteContentRepo implements ContentRepo using a SQLite database. Only the
// passage text is stored; statistics are recomputed on read.
type SQLiteContentRepo struct {
	db db.DBTX
}

// NewSQLiteContentRepo creates a new SQLiteContentRepo.
func NewSQLiteContentRepo(conn db.DBTX) *SQLiteContentRepo {
	return &SQLiteContentRepo{db: conn}
}

func (r *SQLiteContentRepo) Create(ctx context.Context, topicID string, position int, item domain.ContentItem) error {
	query := `INSERT INTO content_items (id, topic_id, position, body) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), topicID, position, item.Text); err != nil {
		return fmt.Errorf("inserting content item: %w", err)
	}
	return nil
}

// ListByTopic returns the topic's passages in position order, labeled with
// their subject and topic names.
func (r *SQLiteContentRepo) ListByTopic(ctx context.Context, topicID string) ([]domain.ContentItem, error) {
	query := `SELECT s.name, t.name, c.body
		FROM content_items c
		JOIN topics t ON t.id = c.topic_id
		JOIN subjects s ON s.id = t.subject_id
		WHERE c.topic_id = ?
		ORDER BY c.position`
	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("listing content items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		var subject, topic, body string
		if err := rows.Scan(&subject, &topic, &body); err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		items = append(items, domain.NewContentItem(subject, topic, body))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content items: %w", err)
	}
	return items, nil
}

func (r *SQLiteContentRepo) CountAll(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "content_items")
}
