package eventbus_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/eventbus/testbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_DeliversInPublishOrder(t *testing.T) {
	tb := testbus.New(t)

	tb.PublishJumpPaperChanged(eventbus.JumpPaperChangedPayload{PaperID: "p1"})
	tb.PublishJumpPaperChanged(eventbus.JumpPaperChangedPayload{PaperID: "p2"})
	tb.PublishJumpPaperChanged(eventbus.JumpPaperChangedPayload{PaperID: "p3"})

	require.Eventually(t, func() bool { return len(tb.Events()) == 3 }, time.Second, 5*time.Millisecond)

	var got []string
	for _, e := range tb.Events() {
		got = append(got, e.Payload.(eventbus.JumpPaperChangedPayload).PaperID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, got)
}

func TestEventBus_DropsWhenFull(t *testing.T) {
	bus := eventbus.New(1)

	var dropped []eventbus.Event
	bus.OnDrop(func(e eventbus.Event, _ any) { dropped = append(dropped, e) })

	// Not started, so the second publish cannot be enqueued.
	bus.PublishTuiStarted(eventbus.TUIStartedPayload{})
	bus.PublishTuiStopped(eventbus.TUIStoppedPayload{})

	assert.Equal(t, []eventbus.Event{eventbus.EventTuiStopped}, dropped)
}

func TestEventBus_RecoversSubscriberPanic(t *testing.T) {
	bus := eventbus.New(4)

	var (
		mu       sync.Mutex
		panicked bool
		reached  bool
	)
	bus.OnPanic(func(eventbus.Event, any, any) {
		mu.Lock()
		panicked = true
		mu.Unlock()
	})
	bus.SubscribeTuiStarted(func(eventbus.TUIStartedPayload) { panic("boom") })
	bus.SubscribeTuiStarted(func(eventbus.TUIStartedPayload) {
		mu.Lock()
		reached = true
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go bus.Start(ctx)

	bus.PublishTuiStarted(eventbus.TUIStartedPayload{})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return panicked && reached
	}, time.Second, 5*time.Millisecond)
}
