package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertSubject(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO subjects (id, name, position, created_at) VALUES (?, ?, 0, '2026-01-01T00:00:00Z')`, id, name)
	return err
}

func subjectCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&n))
	return n
}

func TestWithinTx(t *testing.T) {
	errSeed := errors.New("seed aborted")

	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx db.DBTX) error
		wantErr   error
		wantCount int
	}{
		{
			name: "commits every write on success",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if err := insertSubject(ctx, tx, "s1", "Physics"); err != nil {
					return err
				}
				return insertSubject(ctx, tx, "s2", "Biology")
			},
			wantCount: 2,
		},
		{
			name: "rolls back earlier writes when the callback fails",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if err := insertSubject(ctx, tx, "s1", "Physics"); err != nil {
					return err
				}
				return errSeed
			},
			wantErr:   errSeed,
			wantCount: 0,
		},
		{
			name: "rolls back when a later statement violates a constraint",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if err := insertSubject(ctx, tx, "s1", "Physics"); err != nil {
					return err
				}
				return insertSubject(ctx, tx, "s2", "PHYSICS")
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, uow := newUoW(t)

			err := uow.WithinTx(context.Background(), tt.fn)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCount == 0:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCount, subjectCount(t, database))
		})
	}
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := newUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSubject(ctx, tx, "s1", "Chemistry")
			panic("boom")
		})
	})
	assert.Zero(t, subjectCount(t, database))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
