package reader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/eventbus/testbus"
	"github.com/colonyops/citereader/internal/core/feedback"
)

type mockFeedbackStore struct {
	saved []feedback.Feedback
	err   error
}

func (m *mockFeedbackStore) Save(_ context.Context, f feedback.Feedback) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, f)
	return int64(len(m.saved)), nil
}

func (m *mockFeedbackStore) List(context.Context) ([]feedback.Feedback, error) {
	return m.saved, nil
}

func TestFeedbackService_SubmitEmitsEvent(t *testing.T) {
	store := &mockFeedbackStore{}
	tb := testbus.New(t)
	svc := NewFeedbackService(store, tb.EventBus)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.Submit(context.Background(), feedback.Feedback{
		Kind:    feedback.KindWrongMatch,
		Context: map[string]string{"citationId": "c1"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, fixed, got.CreatedAt)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "c1", store.saved[0].Context["citationId"])

	require.True(t, tb.WaitFor(eventbus.EventFeedbackSubmitted, time.Second))
	payload := tb.Events()[0].Payload.(eventbus.FeedbackSubmittedPayload)
	require.NotNil(t, payload.Feedback)
	assert.Equal(t, int64(1), payload.Feedback.ID)
}

func TestFeedbackService_SubmitInvalid(t *testing.T) {
	store := &mockFeedbackStore{}
	tb := testbus.New(t)
	svc := NewFeedbackService(store, tb.EventBus)

	_, err := svc.Submit(context.Background(), feedback.Feedback{Kind: feedback.KindOther})
	require.ErrorIs(t, err, feedback.ErrInvalid)
	assert.Empty(t, store.saved)
	tb.AssertNotPublished(t, eventbus.EventFeedbackSubmitted, 50*time.Millisecond)
}

func TestFeedbackService_SubmitStoreError(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewFeedbackService(&mockFeedbackStore{err: boom}, nil)

	_, err := svc.Submit(context.Background(), feedback.Feedback{Kind: feedback.KindMissingPaper})
	require.ErrorIs(t, err, boom)
}
