package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func physicsSubject() corpus.SubjectData {
	return testutil.NewTestSubject("Physics",
		testutil.WithResources("Lecture notes"),
		testutil.WithTopic("Mechanics",
			[]string{"Forces cause acceleration.", "Momentum is conserved in collisions."},
			testutil.NewTestQuizItem("What is inertia?", domain.DifficultyEasy),
			testutil.NewTestQuizItem("Derive the work-energy theorem?", domain.DifficultyMedium, testutil.WithCorrectIndex(2)),
		),
		testutil.WithTopic("Thermodynamics",
			[]string{"Heat flows from hot to cold."},
			testutil.NewTestQuizItem("What does entropy measure?", domain.DifficultyMedium),
		),
	)
}

func TestCorpusService_SeedThenLoadRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCorpusService(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	src := testutil.NewTestStore(physicsSubject(), testutil.NewTestSubject("Biology",
		testutil.WithTopic("Genetics", []string{"Genes are inherited."},
			testutil.NewTestQuizItem("What carries genes?", domain.DifficultyEasy)),
	))

	result, err := svc.Seed(ctx, src, "test")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Subjects)
	assert.Equal(t, 3, result.Topics)
	assert.Equal(t, 4, result.Passages)
	assert.Equal(t, 4, result.QuizItems)
	assert.Empty(t, result.Replaced)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Subjects(), loaded.Subjects())

	for _, name := range src.Subjects() {
		want, _ := src.Subject(name)
		got, ok := loaded.Subject(name)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestCorpusService_SeedEmbeddedCorpus(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCorpusService(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	embedded, err := corpus.Embedded()
	require.NoError(t, err)

	result, err := svc.Seed(ctx, embedded, "embedded")
	require.NoError(t, err)
	assert.Equal(t, len(embedded.QuizItems()), result.QuizItems)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, embedded.QuizItems(), loaded.QuizItems())
	assert.Equal(t, embedded.AllTopics(), loaded.AllTopics())
}

func TestCorpusService_ReseedReplacesSubject(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCorpusService(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Seed(ctx, testutil.NewTestStore(physicsSubject()), "first")
	require.NoError(t, err)

	smaller := testutil.NewTestStore(testutil.NewTestSubject("PHYSICS",
		testutil.WithTopic("Optics", []string{"Light refracts."},
			testutil.NewTestQuizItem("What bends light?", domain.DifficultyEasy)),
	))
	result, err := svc.Seed(ctx, smaller, "second")
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics"}, result.Replaced)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	topics, ok := loaded.Topics("physics")
	require.True(t, ok)
	assert.Equal(t, []string{"Optics"}, topics)

	quizCount, err := repository.NewSQLiteQuizRepo(database).CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, quizCount, "old quiz items should be removed with the subject")
}

func TestCorpusService_LoadEmptyDatabase(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCorpusService(database, testutil.NewTestUoW(database))

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptyDatabase)
}

func TestCorpusService_SeedRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// Exec calls for Physics: #1 subject, #2 resource, #3 topic Mechanics,
	// #4 and #5 passages, #6 first quiz item.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 6,
		Err:    fmt.Errorf("injected quiz insert failure"),
	}
	svc := NewCorpusService(database, failUoW)

	_, err := svc.Seed(ctx, testutil.NewTestStore(physicsSubject()), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected quiz insert failure")

	subjects, err := repository.NewSQLiteSubjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subjects, "nothing should be persisted after rollback")
}
