package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/feedback"
)

func TestFeedbackStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := NewFeedbackStore(newTestDB(t))

	older := time.Now().Add(-time.Hour)
	id1, err := store.Save(ctx, feedback.Feedback{
		Kind:      feedback.KindWrongMatch,
		Context:   map[string]string{"citationId": "c1"},
		CreatedAt: older,
	})
	require.NoError(t, err)

	id2, err := store.Save(ctx, feedback.Feedback{
		Kind:    feedback.KindOther,
		Comment: "title is truncated",
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, id2, items[0].ID, "newest first")
	assert.Equal(t, feedback.KindOther, items[0].Kind)
	assert.Equal(t, "title is truncated", items[0].Comment)
	assert.Empty(t, items[0].Context)

	assert.Equal(t, id1, items[1].ID)
	assert.Equal(t, map[string]string{"citationId": "c1"}, items[1].Context)
	assert.WithinDuration(t, older, items[1].CreatedAt, time.Millisecond)
}
