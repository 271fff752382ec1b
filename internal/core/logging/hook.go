package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts citation_id and paper_id from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if citationID := GetCitationID(ctx); citationID != "" {
		e.Str("citation_id", citationID)
	}

	if paperID := GetPaperID(ctx); paperID != "" {
		e.Str("paper_id", paperID)
	}
}
