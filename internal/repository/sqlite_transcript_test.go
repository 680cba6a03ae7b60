package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/testutil"
)

func TestTranscriptRepo_CreateAndListBySession(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	first := testutil.NewTranscriptEntry("session-1")
	first.Question = "first question"
	first.CreatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	second := testutil.NewTranscriptEntry("session-1")
	second.Question = "second question"
	second.CreatedAt = time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC)

	other := testutil.NewTranscriptEntry("session-2")

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	entries, err := repo.ListBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first question", entries[0].Question)
	assert.Equal(t, "second question", entries[1].Question)
	assert.Equal(t, domain.VerdictPass, entries[0].Verdict)
}

func TestTranscriptRepo_ListRecent_Limited(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := testutil.NewTranscriptEntry("session-1")
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, e))
	}

	entries, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Most recent first.
	assert.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))
}
