package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnNames(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query(`PRAGMA table_info(` + table + `)`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func insertSubjectAndTopic(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO subjects (id, name, position, created_at) VALUES ('s1', 'Physics', 0, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO topics (id, subject_id, name, position) VALUES ('t1', 's1', 'Mechanics', 0)`)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"subjects", "subject_resources", "topics", "content_items", "quiz_items"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{
		"idx_subjects_name",
		"idx_topics_subject_name",
		"idx_content_items_topic",
		"idx_quiz_items_topic",
	} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_SubjectsSourceColumn(t *testing.T) {
	db := openTestDB(t)

	assert.Contains(t, columnNames(t, db, "subjects"), "source")
}

func TestMigrate_SubjectNameUniqueIgnoringCase(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subjects (id, name, created_at) VALUES ('s1', 'Physics', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO subjects (id, name, created_at) VALUES ('s2', 'PHYSICS', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_QuizItemsCheckConstraints(t *testing.T) {
	db := openTestDB(t)
	insertSubjectAndTopic(t, db)

	_, err := db.Exec(`INSERT INTO quiz_items (id, topic_id, question, options, correct_index, difficulty)
		VALUES ('q1', 't1', 'What?', '[]', 0, 'hard')`)
	assert.Error(t, err, "unknown difficulty should be rejected")

	_, err = db.Exec(`INSERT INTO quiz_items (id, topic_id, question, options, correct_index, difficulty)
		VALUES ('q1', 't1', 'What?', '[]', 4, 'easy')`)
	assert.Error(t, err, "correct index outside 0..3 should be rejected")

	_, err = db.Exec(`INSERT INTO quiz_items (id, topic_id, question, options, correct_index, difficulty)
		VALUES ('q1', 't1', 'What?', '[]', 3, 'medium')`)
	assert.NoError(t, err)
}

func TestMigrate_DeletingSubjectCascades(t *testing.T) {
	db := openTestDB(t)
	insertSubjectAndTopic(t, db)

	_, err := db.Exec(`INSERT INTO content_items (id, topic_id, body) VALUES ('c1', 't1', 'Forces cause acceleration.')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO subject_resources (subject_id, position, title) VALUES ('s1', 0, 'Lecture notes')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM subjects WHERE id = 's1'`)
	require.NoError(t, err)

	for _, table := range []string{"topics", "content_items", "subject_resources"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, "%s should be emptied by the cascade", table)
	}
}

func TestMigrate_UpgradesSubjectsWithoutSource(t *testing.T) {
	legacy, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	legacy.SetMaxOpenConns(1)
	t.Cleanup(func() { legacy.Close() })

	_, err = legacy.Exec(`CREATE TABLE subjects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = legacy.Exec(`INSERT INTO subjects (id, name, created_at) VALUES ('s1', 'Biology', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(legacy))

	var source string
	require.NoError(t, legacy.QueryRow(`SELECT source FROM subjects WHERE id = 's1'`).Scan(&source))
	assert.Equal(t, "", source)
}
