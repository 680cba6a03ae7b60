package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guffawaffle/majel/internal/testutil"
)

func TestOfficerRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)
	ctx := context.Background()

	officer := testutil.NewOfficer("Khan")
	require.NoError(t, repo.Create(ctx, officer))

	got, err := repo.GetByID(ctx, officer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Khan", got.Name)
	assert.Equal(t, "Federation", got.Faction)
	assert.Equal(t, 20, got.Level)
	assert.Equal(t, "sheet:fleet-roster", got.Source)
	assert.False(t, got.ImportedAt.IsZero())
}

func TestOfficerRepo_GetByName_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewOfficer("Khan")))

	got, err := repo.GetByName(ctx, "khan")
	require.NoError(t, err)
	assert.Equal(t, "Khan", got.Name)
}

func TestOfficerRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOfficerRepo_Upsert_ReplacesByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)
	ctx := context.Background()

	first := testutil.NewOfficer("Spock")
	first.Level = 10
	require.NoError(t, repo.Create(ctx, first))

	second := testutil.NewOfficer("Spock")
	second.Level = 35
	second.Rarity = "Legendary"
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.GetByName(ctx, "Spock")
	require.NoError(t, err)
	assert.Equal(t, 35, got.Level)
	assert.Equal(t, "Legendary", got.Rarity)
	// Original identity survives re-import.
	assert.Equal(t, first.ID, got.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOfficerRepo_List_OrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)
	ctx := context.Background()

	for _, name := range []string{"Uhura", "Chen", "Khan"} {
		require.NoError(t, repo.Create(ctx, testutil.NewOfficer(name)))
	}

	officers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, officers, 3)
	assert.Equal(t, "Chen", officers[0].Name)
	assert.Equal(t, "Khan", officers[1].Name)
	assert.Equal(t, "Uhura", officers[2].Name)
}

func TestOfficerRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfficerRepo(db)
	ctx := context.Background()

	officer := testutil.NewOfficer("Khan")
	require.NoError(t, repo.Create(ctx, officer))
	require.NoError(t, repo.Delete(ctx, officer.ID))

	_, err := repo.GetByID(ctx, officer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
