package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studypal/internal/db"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

// Create inserts the subject and its resources. A zero CreatedAt is set to now.
func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *SubjectRecord) error {
	createdAt := nowUTC()
	if !s.CreatedAt.IsZero() {
		createdAt = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO subjects (id, name, position, source, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Position, s.Source, createdAt); err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	for i, title := range s.Resources {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO subject_resources (subject_id, position, title) VALUES (?, ?, ?)`,
			s.ID, i, title); err != nil {
			return fmt.Errorf("inserting resource %q: %w", title, err)
		}
	}
	return nil
}

// GetByName looks a subject up ignoring case.
func (r *SQLiteSubjectRepo) GetByName(ctx context.Context, name string) (*SubjectRecord, error) {
	query := `SELECT id, name, position, source, created_at FROM subjects WHERE name = ? COLLATE NOCASE`
	var s SubjectRecord
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&s.ID, &s.Name, &s.Position, &s.Source, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subject %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)

	resources, err := r.listResources(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Resources = resources
	return &s, nil
}

// List returns every subject ordered by position, then name.
func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*SubjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, position, source, created_at FROM subjects ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}

	var subjects []*SubjectRecord
	for rows.Next() {
		var s SubjectRecord
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Position, &s.Source, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		subjects = append(subjects, &s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	rows.Close()

	// Resources are read after the cursor is closed; an in-memory database
	// has a single connection.
	for _, s := range subjects {
		resources, err := r.listResources(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Resources = resources
	}
	return subjects, nil
}

// Delete removes a subject; its topics, passages, quiz items and resources
// go with it.
func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) listResources(ctx context.Context, subjectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT title FROM subject_resources WHERE subject_id = ? ORDER BY position`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return titles, nil
}
