package eventbus

import (
	"context"
	"sync"
)

// DefaultBufferSize is the queue depth used by callers that have no better
// estimate.
const DefaultBufferSize = 64

type envelope struct {
	event   Event
	payload any
}

// EventBus queues published events and delivers them to subscribers, in
// publish order, on the goroutine running Start. Publishing never blocks: when
// the queue is full the event is dropped and OnDrop hooks fire.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu   sync.RWMutex
	subs map[Event][]func(any)
}

// New creates a bus with the given queue depth.
func New(buffer int) *EventBus {
	if buffer < 1 {
		buffer = DefaultBufferSize
	}
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
	}
}

// Start delivers events until ctx is cancelled.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					bus.runOnPanic(env.event, env.payload, r)
				}
			}()
			fn(env.payload)
		}()
	}
}

// PublishCitationSelected enqueues a citation.selected event.
func (bus *EventBus) PublishCitationSelected(p CitationSelectedPayload) {
	bus.send(EventCitationSelected, p)
}

// SubscribeCitationSelected registers fn for citation.selected events.
func (bus *EventBus) SubscribeCitationSelected(fn func(CitationSelectedPayload)) {
	bus.subscribe(EventCitationSelected, func(p any) { fn(p.(CitationSelectedPayload)) })
}

// PublishDrawerChanged enqueues a drawer.changed event.
func (bus *EventBus) PublishDrawerChanged(p DrawerChangedPayload) {
	bus.send(EventDrawerChanged, p)
}

// SubscribeDrawerChanged registers fn for drawer.changed events.
func (bus *EventBus) SubscribeDrawerChanged(fn func(DrawerChangedPayload)) {
	bus.subscribe(EventDrawerChanged, func(p any) { fn(p.(DrawerChangedPayload)) })
}

// PublishJumpPaperChanged enqueues a jump.paper-changed event.
func (bus *EventBus) PublishJumpPaperChanged(p JumpPaperChangedPayload) {
	bus.send(EventJumpPaperChanged, p)
}

// SubscribeJumpPaperChanged registers fn for jump.paper-changed events.
func (bus *EventBus) SubscribeJumpPaperChanged(fn func(JumpPaperChangedPayload)) {
	bus.subscribe(EventJumpPaperChanged, func(p any) { fn(p.(JumpPaperChangedPayload)) })
}

// PublishFeedbackSubmitted enqueues a feedback.submitted event.
func (bus *EventBus) PublishFeedbackSubmitted(p FeedbackSubmittedPayload) {
	bus.send(EventFeedbackSubmitted, p)
}

// SubscribeFeedbackSubmitted registers fn for feedback.submitted events.
func (bus *EventBus) SubscribeFeedbackSubmitted(fn func(FeedbackSubmittedPayload)) {
	bus.subscribe(EventFeedbackSubmitted, func(p any) { fn(p.(FeedbackSubmittedPayload)) })
}

// PublishNotificationPublished enqueues a notification.published event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeNotificationPublished registers fn for notification.published events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(p any) { fn(p.(NotificationPublishedPayload)) })
}

// PublishTuiStarted enqueues a tui.started event.
func (bus *EventBus) PublishTuiStarted(p TUIStartedPayload) {
	bus.send(EventTuiStarted, p)
}

// SubscribeTuiStarted registers fn for tui.started events.
func (bus *EventBus) SubscribeTuiStarted(fn func(TUIStartedPayload)) {
	bus.subscribe(EventTuiStarted, func(p any) { fn(p.(TUIStartedPayload)) })
}

// PublishTuiStopped enqueues a tui.stopped event.
func (bus *EventBus) PublishTuiStopped(p TUIStoppedPayload) {
	bus.send(EventTuiStopped, p)
}

// SubscribeTuiStopped registers fn for tui.stopped events.
func (bus *EventBus) SubscribeTuiStopped(fn func(TUIStoppedPayload)) {
	bus.subscribe(EventTuiStopped, func(p any) { fn(p.(TUIStoppedPayload)) })
}
