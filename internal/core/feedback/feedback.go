// Package feedback defines user feedback reports raised from reader views.
package feedback

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// ErrInvalid is returned when a feedback report is missing required data.
var ErrInvalid = errors.New("invalid feedback")

// Kind classifies what the reader is reporting.
type Kind string

const (
	KindWrongMatch   Kind = "wrong-match"
	KindMissingPaper Kind = "missing-paper"
	KindOther        Kind = "other"
)

// Kinds returns all known feedback kinds in display order.
func Kinds() []Kind {
	return []Kind{KindWrongMatch, KindMissingPaper, KindOther}
}

// Label returns a human readable label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindWrongMatch:
		return "Wrong paper matched"
	case KindMissingPaper:
		return "A cited paper is missing"
	case KindOther:
		return "Something else"
	}
	return string(k)
}

// Feedback is one submitted report. Context carries correlation metadata from
// the view that raised it, e.g. {"citationId": "c1"}.
type Feedback struct {
	ID        int64             `json:"id"`
	Kind      Kind              `json:"kind"`
	Comment   string            `json:"comment"`
	Context   map[string]string `json:"context"`
	CreatedAt time.Time         `json:"created_at"`
}

// Validate checks the report has a known kind and, for KindOther, a comment.
func (f Feedback) Validate() error {
	if !slices.Contains(Kinds(), f.Kind) {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, f.Kind)
	}
	if f.Kind == KindOther && strings.TrimSpace(f.Comment) == "" {
		return fmt.Errorf("%w: comment is required for %q", ErrInvalid, f.Kind)
	}
	return nil
}

// ContextString renders the context bag as sorted key=value pairs.
func (f Feedback) ContextString() string {
	keys := slices.Sorted(maps.Keys(f.Context))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+f.Context[k])
	}
	return strings.Join(parts, " ")
}
