package citation

import (
	"fmt"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/tui/components"
)

const (
	// ListLabel is the accessible label of the paper list.
	ListLabel = "cited papers"

	// ContextCitationID is the feedback context key holding the citation id.
	ContextCitationID = "citationId"

	feedbackKey = "f"
)

// Props are the inputs of the tooltip body.
type Props struct {
	Citation citation.Citation
	PaperIDs []string
}

// Validate reports ErrMalformedProps when the citation has no id or any paper
// id is blank. An empty PaperIDs slice is valid.
func (p Props) Validate() error {
	return citation.Citation{ID: p.Citation.ID, PaperIDs: p.PaperIDs}.Validate()
}

// Body is the view description produced by Render.
type Body struct {
	Header Header
	List   List
}

// Header is the line above the paper list.
type Header struct {
	Label    string
	Count    int
	Feedback components.FeedbackButton
}

// List is the selectable list of candidate papers.
type List struct {
	AriaLabel string
	Entries   []Entry
}

// Entry is one selectable paper row, keyed by its paper id.
type Entry struct {
	Key     string
	PaperID string
}

// HeaderLabel returns the header text for n matched papers. Only counts above
// one are pluralized, so zero reads "0 paper:".
func HeaderLabel(n int) string {
	noun := "paper"
	if n > 1 {
		noun = "papers"
	}
	return fmt.Sprintf("This citation was matched to %d %s:", n, noun)
}

// Render builds the tooltip body for props. It is pure: equal props always
// produce equal bodies.
func Render(props Props) Body {
	entries := make([]Entry, 0, len(props.PaperIDs))
	for _, id := range props.PaperIDs {
		entries = append(entries, Entry{Key: id, PaperID: id})
	}

	return Body{
		Header: Header{
			Label: HeaderLabel(len(props.PaperIDs)),
			Count: len(props.PaperIDs),
			Feedback: components.NewFeedbackButton(
				map[string]string{ContextCitationID: props.Citation.ID},
				feedbackKey,
			),
		},
		List: List{
			AriaLabel: ListLabel,
			Entries:   entries,
		},
	}
}
