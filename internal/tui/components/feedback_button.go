package components

import (
	"maps"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/citereader/internal/core/styles"
)

// FeedbackRequestedMsg is emitted when a feedback affordance is triggered.
// Context is the correlation metadata the affordance was created with.
type FeedbackRequestedMsg struct {
	Context map[string]string
}

// FeedbackButton is a feedback affordance tagged with contextual metadata so
// submissions can be correlated to the view that raised them.
type FeedbackButton struct {
	Context map[string]string
	Key     string // key hint shown next to the label
}

// NewFeedbackButton creates a button carrying a copy of ctx.
func NewFeedbackButton(ctx map[string]string, key string) FeedbackButton {
	return FeedbackButton{Context: maps.Clone(ctx), Key: key}
}

// View renders the affordance.
func (b FeedbackButton) View() string {
	label := "feedback"
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	return styles.FeedbackButtonStyle.Render(label)
}

// Trigger returns a command emitting FeedbackRequestedMsg with the button's context.
func (b FeedbackButton) Trigger() tea.Cmd {
	ctx := maps.Clone(b.Context)
	return func() tea.Msg {
		return FeedbackRequestedMsg{Context: ctx}
	}
}
