package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studypal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepo_CreateAndGetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &SubjectRecord{
		ID:        "s1",
		Name:      "Physics",
		Position:  2,
		Source:    "embedded",
		Resources: []string{"Lecture notes", "Problem sets"},
		CreatedAt: created,
	}))

	fetched, err := repo.GetByName(ctx, "physics")
	require.NoError(t, err)
	assert.Equal(t, "s1", fetched.ID)
	assert.Equal(t, "Physics", fetched.Name)
	assert.Equal(t, 2, fetched.Position)
	assert.Equal(t, "embedded", fetched.Source)
	assert.Equal(t, []string{"Lecture notes", "Problem sets"}, fetched.Resources)
	assert.True(t, created.Equal(fetched.CreatedAt))
}

func TestSubjectRepo_GetByName_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)

	_, err := repo.GetByName(context.Background(), "Astronomy")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_DuplicateNameRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &SubjectRecord{ID: "s1", Name: "Biology"}))
	assert.Error(t, repo.Create(ctx, &SubjectRecord{ID: "s2", Name: "BIOLOGY"}))
}

func TestSubjectRepo_ListOrdersByPosition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &SubjectRecord{ID: "s1", Name: "Physics", Position: 1}))
	require.NoError(t, repo.Create(ctx, &SubjectRecord{ID: "s2", Name: "Biology", Position: 0, Resources: []string{"Atlas"}}))
	require.NoError(t, repo.Create(ctx, &SubjectRecord{ID: "s3", Name: "Algebra Club", Position: 1}))

	subjects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Biology", subjects[0].Name)
	assert.Equal(t, []string{"Atlas"}, subjects[0].Resources)
	assert.Equal(t, "Algebra Club", subjects[1].Name)
	assert.Equal(t, "Physics", subjects[2].Name)
	assert.Empty(t, subjects[2].Resources)
}

func TestSubjectRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	subjects := NewSQLiteSubjectRepo(db)
	topics := NewSQLiteTopicRepo(db)
	ctx := context.Background()

	require.NoError(t, subjects.Create(ctx, &SubjectRecord{ID: "s1", Name: "Physics"}))
	require.NoError(t, topics.Create(ctx, &TopicRecord{ID: "t1", SubjectID: "s1", Name: "Mechanics"}))

	require.NoError(t, subjects.Delete(ctx, "s1"))

	remaining, err := topics.ListBySubject(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
