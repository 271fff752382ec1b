package reader

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/internal/core/logging"
)

// FeedbackStore is the persistence feedback submission needs.
type FeedbackStore interface {
	Save(ctx context.Context, f feedback.Feedback) (int64, error)
	List(ctx context.Context) ([]feedback.Feedback, error)
}

// FeedbackService validates and records feedback reports.
type FeedbackService struct {
	store FeedbackStore
	bus   *eventbus.EventBus
	now   func() time.Time
}

// NewFeedbackService creates a new FeedbackService. bus may be nil.
func NewFeedbackService(store FeedbackStore, bus *eventbus.EventBus) *FeedbackService {
	return &FeedbackService{store: store, bus: bus, now: time.Now}
}

// Submit validates f, stores it and announces it on the bus. The stored
// report, with its id and timestamp, is returned.
func (s *FeedbackService) Submit(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	if err := f.Validate(); err != nil {
		return f, err
	}

	if id := f.Context["citationId"]; id != "" {
		ctx = logging.WithCitationID(ctx, id)
	}

	f.CreatedAt = s.now()
	id, err := s.store.Save(ctx, f)
	if err != nil {
		return f, fmt.Errorf("submit feedback: %w", err)
	}
	f.ID = id

	logging.Component("feedback").Info().
		Ctx(ctx).
		Int64("id", f.ID).
		Str("kind", string(f.Kind)).
		Msg("feedback recorded")

	if s.bus != nil {
		stored := f
		s.bus.PublishFeedbackSubmitted(eventbus.FeedbackSubmittedPayload{Feedback: &stored})
	}
	return f, nil
}

// List returns all stored reports, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]feedback.Feedback, error) {
	return s.store.List(ctx)
}
