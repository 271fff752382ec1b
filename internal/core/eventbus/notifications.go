package eventbus

import (
	"fmt"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/notify"
)

// NotificationRouter maps reader events to user-facing notifications.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-notification mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeJumpPaperChanged(func(p JumpPaperChangedPayload) {
		if p.PaperID == "" {
			return
		}
		r.notifyf(notify.LevelInfo, "jumping to paper %s", p.PaperID)
	})

	r.bus.SubscribeDrawerChanged(func(p DrawerChangedPayload) {
		if p.New == citation.DrawerClosed {
			r.notifyf(notify.LevelInfo, "drawer closed")
		}
	})

	r.bus.SubscribeFeedbackSubmitted(func(p FeedbackSubmittedPayload) {
		if p.Feedback == nil {
			return
		}
		r.notifyf(notify.LevelInfo, "feedback #%d recorded, thank you", p.Feedback.ID)
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
