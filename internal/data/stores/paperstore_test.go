package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/data/db"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestPaperStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewPaperStore(newTestDB(t))

	want := paper.Paper{
		ID:       "p1",
		Title:    "Augmenting Scientific Papers",
		Authors:  []string{"Head", "Lo", "Kang"},
		Year:     2021,
		Venue:    "CHI",
		Abstract: "We *augment* papers.",
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPaperStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewPaperStore(newTestDB(t))

	require.NoError(t, store.Save(ctx, paper.Paper{ID: "p1", Title: "Draft"}))
	require.NoError(t, store.Save(ctx, paper.Paper{ID: "p1", Title: "Final"}))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, []string{}, got.Authors)
}

func TestPaperStore_GetNotFound(t *testing.T) {
	store := NewPaperStore(newTestDB(t))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFoundError(err))
}

func TestPaperStore_GetManySkipsMissing(t *testing.T) {
	ctx := context.Background()
	store := NewPaperStore(newTestDB(t))

	require.NoError(t, store.SaveAll(ctx, []paper.Paper{
		{ID: "p1", Title: "One"},
		{ID: "p3", Title: "Three"},
	}))

	got, err := store.GetMany(ctx, []string{"p3", "p2", "p1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestPaperStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewPaperStore(newTestDB(t))

	papers, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, papers)

	require.NoError(t, store.SaveAll(ctx, []paper.Paper{
		{ID: "b", Title: "B"},
		{ID: "a", Title: "A"},
	}))

	papers, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, "a", papers[0].ID)
	assert.Equal(t, "b", papers[1].ID)
}
