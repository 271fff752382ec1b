package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/citereader/internal/core/notify"
	"github.com/colonyops/citereader/internal/core/styles"
)

const (
	statusTTL          = 4 * time.Second
	statusTickInterval = 250 * time.Millisecond
	statusMaxEntries   = 3
)

type statusTickMsg time.Time

func scheduleStatusTick() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

type statusEntry struct {
	notification notify.Notification
	remaining    time.Duration
}

// StatusLine shows the most recent notifications under the tooltip until
// their TTL runs out.
type StatusLine struct {
	entries []statusEntry
	ticking bool
}

// Push adds n, evicting the oldest entry beyond statusMaxEntries.
func (s *StatusLine) Push(n notify.Notification) {
	s.entries = append(s.entries, statusEntry{notification: n, remaining: statusTTL})
	if len(s.entries) > statusMaxEntries {
		s.entries = s.entries[len(s.entries)-statusMaxEntries:]
	}
}

// Tick ages every entry by d and drops the expired ones.
func (s *StatusLine) Tick(d time.Duration) {
	alive := s.entries[:0]
	for _, e := range s.entries {
		e.remaining -= d
		if e.remaining > 0 {
			alive = append(alive, e)
		}
	}
	s.entries = alive
}

// Empty reports whether nothing is shown.
func (s *StatusLine) Empty() bool {
	return len(s.entries) == 0
}

// Messages returns the visible messages, oldest first.
func (s *StatusLine) Messages() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.notification.Message)
	}
	return out
}

// View renders the newest entry truncated to width.
func (s *StatusLine) View(width int) string {
	if len(s.entries) == 0 {
		return ""
	}

	n := s.entries[len(s.entries)-1].notification
	text := n.Message
	if width > 0 {
		text = ansi.Truncate(text, width, "…")
	}

	switch n.Level {
	case notify.LevelError:
		return styles.TextErrorStyle.Render(text)
	case notify.LevelWarning:
		return styles.TextPrimaryBoldStyle.Render(text)
	default:
		return styles.StatusLineStyle.Render(text)
	}
}
