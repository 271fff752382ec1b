// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within the reader.
package eventbus

import (
	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/internal/core/notify"
)

// Event names a bus topic.
type Event string

// Keep list sorted A-Z.
const (
	EventCitationSelected      Event = "citation.selected"
	EventDrawerChanged         Event = "drawer.changed"
	EventFeedbackSubmitted     Event = "feedback.submitted"
	EventJumpPaperChanged      Event = "jump.paper-changed"
	EventNotificationPublished Event = "notification.published"
	EventTuiStarted            Event = "tui.started"
	EventTuiStopped            Event = "tui.stopped"
)

// CitationSelectedPayload is emitted when the reader records a selected citation.
type CitationSelectedPayload struct {
	Citation citation.Citation
}

// DrawerChangedPayload is emitted when the side panel mode changes.
type DrawerChangedPayload struct {
	Old citation.DrawerState
	New citation.DrawerState
}

// JumpPaperChangedPayload is emitted when the drawer's jump target changes.
type JumpPaperChangedPayload struct {
	PaperID string
}

// FeedbackSubmittedPayload is emitted after feedback is stored.
type FeedbackSubmittedPayload struct {
	Feedback *feedback.Feedback
}

// NotificationPublishedPayload carries a user-facing status message.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}

// TUIStartedPayload is emitted when the TUI starts.
type TUIStartedPayload struct{}

// TUIStoppedPayload is emitted when the TUI stops.
type TUIStoppedPayload struct{}
