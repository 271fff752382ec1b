package citation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "This citation was matched to 0 paper:"},
		{n: 1, want: "This citation was matched to 1 paper:"},
		{n: 2, want: "This citation was matched to 2 papers:"},
		{n: 17, want: "This citation was matched to 17 papers:"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, HeaderLabel(tt.n))
		})
	}
}

func TestRender_EntriesFollowInputOrder(t *testing.T) {
	for n := 0; n <= 12; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("paper-%02d", n-i)
		}

		body := Render(Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: ids})

		require.Len(t, body.List.Entries, n)
		assert.Equal(t, n, body.Header.Count)
		for i, e := range body.List.Entries {
			assert.Equal(t, ids[i], e.Key)
			assert.Equal(t, ids[i], e.PaperID)
		}
	}
}

func TestRender_DuplicatesAreKept(t *testing.T) {
	body := Render(Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: []string{"p1", "p1"}})
	assert.Len(t, body.List.Entries, 2)
}

func TestRender_FeedbackContext(t *testing.T) {
	for _, ids := range [][]string{nil, {"p1"}, {"p1", "p2", "p3"}} {
		body := Render(Props{Citation: citation.Citation{ID: "c42"}, PaperIDs: ids})
		assert.Equal(t, map[string]string{"citationId": "c42"}, body.Header.Feedback.Context)
	}
}

func TestRender_ListLabel(t *testing.T) {
	body := Render(Props{Citation: citation.Citation{ID: "c1"}})
	assert.Equal(t, "cited papers", body.List.AriaLabel)
}

func TestRender_Idempotent(t *testing.T) {
	props := Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: []string{"p1", "p2"}}
	assert.Equal(t, Render(props), Render(props))
}

func TestRender_DoesNotAliasInput(t *testing.T) {
	ids := []string{"p1", "p2"}
	body := Render(Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: ids})
	ids[0] = "changed"

	assert.Equal(t, "p1", body.List.Entries[0].PaperID)
}

func TestRender_Scenarios(t *testing.T) {
	t.Run("two papers", func(t *testing.T) {
		body := Render(Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: []string{"p1", "p2"}})

		assert.True(t, strings.HasSuffix(body.Header.Label, "matched to 2 papers:"))
		require.Len(t, body.List.Entries, 2)
		assert.Equal(t, "p1", body.List.Entries[0].Key)
		assert.Equal(t, "p2", body.List.Entries[1].Key)
	})

	t.Run("no papers", func(t *testing.T) {
		body := Render(Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: []string{}})

		assert.True(t, strings.HasSuffix(body.Header.Label, "matched to 0 paper:"))
		assert.Empty(t, body.List.Entries)
		assert.Equal(t, "c1", body.Header.Feedback.Context[ContextCitationID])
	})
}

func TestProps_Validate(t *testing.T) {
	assert.NoError(t, Props{Citation: citation.Citation{ID: "c1"}}.Validate())
	assert.ErrorIs(t, Props{PaperIDs: []string{"p1"}}.Validate(), citation.ErrMalformedProps)
	assert.ErrorIs(t, Props{Citation: citation.Citation{ID: "c1"}, PaperIDs: []string{""}}.Validate(), citation.ErrMalformedProps)
}
