package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/citereader/internal/core/notify"
	"github.com/colonyops/citereader/pkg/tuitest"
)

func TestStatusLine_PushEvictsOldest(t *testing.T) {
	var s StatusLine
	for i := range statusMaxEntries + 2 {
		s.Push(notify.Notification{Message: fmt.Sprintf("m%d", i)})
	}

	assert.Equal(t, []string{"m2", "m3", "m4"}, s.Messages())
}

func TestStatusLine_TickExpires(t *testing.T) {
	var s StatusLine
	s.Push(notify.Notification{Message: "old"})
	s.Tick(statusTTL - time.Second)
	s.Push(notify.Notification{Message: "new"})

	s.Tick(time.Second)

	assert.Equal(t, []string{"new"}, s.Messages())

	s.Tick(statusTTL)
	assert.True(t, s.Empty())
}

func TestStatusLine_ViewShowsNewest(t *testing.T) {
	var s StatusLine
	assert.Empty(t, s.View(80))

	s.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	s.Push(notify.Notification{Level: notify.LevelError, Message: "a very long error message"})

	assert.Equal(t, "a very lo…", tuitest.StripANSI(s.View(10)))
}
