package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/internal/data/db"
)

const (
	busyRetries = 3
	busyBackoff = 50 * time.Millisecond
)

// FeedbackStore persists feedback reports in SQLite.
type FeedbackStore struct {
	db *db.DB
}

// NewFeedbackStore creates a new SQLite-backed feedback store.
func NewFeedbackStore(db *db.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// Save stores a report and returns its id. SQLITE_BUSY is retried a few times
// since the CLI and a running TUI may write concurrently.
func (s *FeedbackStore) Save(ctx context.Context, f feedback.Feedback) (int64, error) {
	ctxJSON, err := json.Marshal(f.Context)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal feedback context: %w", err)
	}
	if f.Context == nil {
		ctxJSON = []byte("{}")
	}

	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := db.Feedback{
		Kind:      string(f.Kind),
		Comment:   f.Comment,
		Context:   string(ctxJSON),
		CreatedAt: createdAt.UnixNano(),
	}

	wait := busyBackoff
	for attempt := 0; ; attempt++ {
		id, err := s.db.Queries().InsertFeedback(ctx, row)
		if err == nil {
			return id, nil
		}
		if !IsBusyError(err) || attempt >= busyRetries {
			return 0, fmt.Errorf("failed to save feedback: %w", err)
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(wait):
			wait *= 2
		}
	}
}

// List returns all reports, newest first.
func (s *FeedbackStore) List(ctx context.Context) ([]feedback.Feedback, error) {
	rows, err := s.db.Queries().ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	items := make([]feedback.Feedback, 0, len(rows))
	for _, row := range rows {
		var fbCtx map[string]string
		if err := json.Unmarshal([]byte(row.Context), &fbCtx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal context of feedback %d: %w", row.ID, err)
		}
		items = append(items, feedback.Feedback{
			ID:        row.ID,
			Kind:      feedback.Kind(row.Kind),
			Comment:   row.Comment,
			Context:   fbCtx,
			CreatedAt: time.Unix(0, row.CreatedAt),
		})
	}
	return items, nil
}
