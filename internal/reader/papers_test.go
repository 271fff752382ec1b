package reader

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/data/db"
	"github.com/colonyops/citereader/internal/data/stores"
)

func newPaperService(t *testing.T) *PaperService {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewPaperService(stores.NewPaperStore(database))
}

const catalogYAML = `
papers:
  - id: p1
    title: Augmenting Scientific Papers with Just-in-Time Definitions
    authors: [Andrew Head, Kyle Lo, Dongyeop Kang]
    year: 2021
    venue: CHI
  - id: p2
    title: Citeread
    authors: [Napol Rachatasumrit]
`

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{name: "valid", input: catalogYAML, want: 2},
		{name: "empty document", input: "", want: 0},
		{name: "missing title", input: "papers:\n  - id: p1\n", wantErr: "papers[0]"},
		{name: "duplicate id", input: "papers:\n  - {id: p1, title: A}\n  - {id: p1, title: B}\n", wantErr: "duplicates papers[0]"},
		{name: "bad yaml", input: "papers: [", wantErr: "decode catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := ParseCatalog(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cat.Papers, tt.want)
		})
	}
}

func TestPaperService_ImportAndIndex(t *testing.T) {
	ctx := context.Background()
	svc := newPaperService(t)

	n, err := svc.Import(ctx, strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	idx, err := svc.Index(ctx, []string{"p1", "p9"})
	require.NoError(t, err)

	p, ok := idx.Paper("p1")
	require.True(t, ok)
	assert.Equal(t, "Andrew Head, Kyle Lo, Dongyeop Kang · CHI · 2021", p.Byline())

	_, ok = idx.Paper("p9")
	assert.False(t, ok)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPaperService_ImportInvalidStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newPaperService(t)

	_, err := svc.Import(ctx, strings.NewReader("papers:\n  - {id: p1, title: A}\n  - {id: p2}\n"))
	require.ErrorIs(t, err, paper.ErrInvalid)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPaperService_GetMissing(t *testing.T) {
	svc := newPaperService(t)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, stores.ErrNotFound)
}
