package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// whole list is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subjects_name ON subjects(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS subject_resources (
		subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		title      TEXT NOT NULL,
		PRIMARY KEY (subject_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS topics (
		id         TEXT PRIMARY KEY,
		subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_topics_subject_name ON topics(subject_id, name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS content_items (
		id         TEXT PRIMARY KEY,
		topic_id   TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL DEFAULT 0,
		body       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_content_items_topic ON content_items(topic_id)`,

	`CREATE TABLE IF NOT EXISTS quiz_items (
		id            TEXT PRIMARY KEY,
		topic_id      TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL DEFAULT 0,
		question      TEXT NOT NULL,
		options       TEXT NOT NULL,
		correct_index INTEGER NOT NULL CHECK(correct_index >= 0 AND correct_index < 4),
		difficulty    TEXT NOT NULL CHECK(difficulty IN ('easy','medium'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quiz_items_topic ON quiz_items(topic_id)`,

	// Where a subject was seeded from: a YAML directory or the embedded corpus.
	`ALTER TABLE subjects ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
}
