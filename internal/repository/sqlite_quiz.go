package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/google/uuid"
)

// SQLiteQuizRepo implements QuizRepo using a SQLite database. Options are
// stored as a JSON array.
type SQLiteQuizRepo struct {
	db db.DBTX
}

// NewSQLiteQuizRepo creates a new SQLiteQuizRepo.
func NewSQLiteQuizRepo(conn db.DBTX) *SQLiteQuizRepo {
	return &SQLiteQuizRepo{db: conn}
}

func (r *SQLiteQuizRepo) Create(ctx context.Context, topicID string, position int, q *domain.QuizItem) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	query := `INSERT INTO quiz_items (id, topic_id, position, question, options, correct_index, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		uuid.NewString(),
		topicID,
		position,
		q.Question,
		string(options),
		q.CorrectIndex,
		string(q.Difficulty),
	)
	if err != nil {
		return fmt.Errorf("inserting quiz item: %w", err)
	}
	return nil
}

func (r *SQLiteQuizRepo) ListByTopic(ctx context.Context, topicID string) ([]domain.QuizItem, error) {
	query := `SELECT s.name, t.name, q.question, q.options, q.correct_index, q.difficulty
		FROM quiz_items q
		JOIN topics t ON t.id = q.topic_id
		JOIN subjects s ON s.id = t.subject_id
		WHERE q.topic_id = ?
		ORDER BY q.position`
	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("listing quiz items: %w", err)
	}
	defer rows.Close()

	var items []domain.QuizItem
	for rows.Next() {
		var q domain.QuizItem
		var options, difficulty string
		if err := rows.Scan(&q.Subject, &q.Topic, &q.Question, &options, &q.CorrectIndex, &difficulty); err != nil {
			return nil, fmt.Errorf("scanning quiz item: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("decoding options of %q: %w", q.Question, err)
		}
		q.Difficulty = domain.Difficulty(difficulty)
		items = append(items, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz items: %w", err)
	}
	return items, nil
}

func (r *SQLiteQuizRepo) CountAll(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "quiz_items")
}
