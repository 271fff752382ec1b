package logging

import "context"

type contextKey string

const (
	citationIDKey contextKey = "citation_id"
	paperIDKey    contextKey = "paper_id"
)

// WithCitationID adds a citation ID to the context.
func WithCitationID(ctx context.Context, citationID string) context.Context {
	return context.WithValue(ctx, citationIDKey, citationID)
}

// WithPaperID adds a paper ID to the context.
func WithPaperID(ctx context.Context, paperID string) context.Context {
	return context.WithValue(ctx, paperIDKey, paperID)
}

// GetCitationID retrieves the citation ID from the context.
// Returns empty string if not present.
func GetCitationID(ctx context.Context) string {
	if id, ok := ctx.Value(citationIDKey).(string); ok {
		return id
	}
	return ""
}

// GetPaperID retrieves the paper ID from the context.
// Returns empty string if not present.
func GetPaperID(ctx context.Context) string {
	if id, ok := ctx.Value(paperIDKey).(string); ok {
		return id
	}
	return ""
}
