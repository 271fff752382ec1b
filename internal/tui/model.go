// Package tui implements the interactive citation reader: the citation
// tooltip, the drawer panel that reacts to its selections, and the feedback
// form.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/config"
	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/internal/core/logging"
	"github.com/colonyops/citereader/internal/core/notify"
	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/core/styles"
	"github.com/colonyops/citereader/internal/reader"
	"github.com/colonyops/citereader/internal/tui/components"
	citationview "github.com/colonyops/citereader/internal/tui/views/citation"
)

// ReaderState is the shared state the tooltip writes to and the drawer reads.
type ReaderState interface {
	citationview.Mutators
	Snapshot() reader.Snapshot
}

// FeedbackSubmitter records feedback reports.
type FeedbackSubmitter interface {
	Submit(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error)
}

// Options configures the TUI.
type Options struct {
	Config   *config.Config
	Citation citation.Citation
	Papers   paper.Index                // metadata for the citation's papers
	State    ReaderState                // shared reader state
	Feedback FeedbackSubmitter          // feedback submission (required when feedback is enabled)
	Bus      *eventbus.EventBus         // optional; drives the status line
	Renderer citationview.PaperRenderer // optional; defaults to a paper card over Papers
}

type feedbackSubmittedMsg struct {
	feedback feedback.Feedback
	err      error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg      *config.Config
	state    ReaderState
	feedback FeedbackSubmitter
	bus      *eventbus.EventBus
	papers   paper.Index
	log      zerolog.Logger

	tooltip citationview.Tooltip
	form    *components.FeedbackForm
	keys    keyMap
	help    help.Model

	notifications *NotificationBuffer
	status        *StatusLine

	width    int
	height   int
	quitting bool
}

// New builds the root model. It fails when the citation is malformed or the
// reader state is missing.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}
	if opts.State == nil {
		return Model{}, fmt.Errorf("%w: reader state is nil", citation.ErrConfiguration)
	}
	if cfg.Feedback.Enabled && opts.Feedback == nil {
		return Model{}, fmt.Errorf("%w: feedback is enabled but no submitter is set", citation.ErrConfiguration)
	}

	papers := opts.Papers
	if papers == nil {
		papers = paper.Index{}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = components.NewPaperCard(papers, components.PaperCardOptions{
			ShowAbstract:  cfg.Tooltip.ShowAbstract,
			AbstractLines: cfg.Tooltip.AbstractLines,
		})
	}

	actions, err := citationview.NewActions(opts.State)
	if err != nil {
		return Model{}, err
	}

	props := citationview.Props{Citation: opts.Citation, PaperIDs: opts.Citation.PaperIDs}
	tooltip, err := citationview.New(props, actions, renderer)
	if err != nil {
		return Model{}, err
	}
	tooltip.SetWidth(cfg.TUI.Width - styles.TooltipStyle.GetHorizontalFrameSize())

	m := Model{
		cfg:           cfg,
		state:         opts.State,
		feedback:      opts.Feedback,
		bus:           opts.Bus,
		papers:        papers,
		log:           logging.Component("tui"),
		tooltip:       tooltip,
		keys:          defaultKeyMap(tooltip.Keys()),
		help:          help.New(),
		notifications: NewNotificationBuffer(),
		status:        &StatusLine{},
	}

	if m.bus != nil {
		buf := m.notifications
		m.bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
			buf.Push(notify.Notification{Level: p.Level, Message: p.Message})
		})
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.bus != nil {
		m.bus.PublishTuiStarted(eventbus.TUIStartedPayload{})
	}
	return m.notifications.WaitForSignal()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		boxWidth := min(m.cfg.TUI.Width, msg.Width)
		m.tooltip.SetWidth(boxWidth - styles.TooltipStyle.GetHorizontalFrameSize())
		return m, nil

	case drainNotificationsMsg:
		for _, n := range m.notifications.Drain() {
			m.status.Push(n)
		}
		return m, tea.Batch(m.notifications.WaitForSignal(), m.startStatusTick())

	case statusTickMsg:
		m.status.Tick(statusTickInterval)
		if m.status.Empty() {
			m.status.ticking = false
			return m, nil
		}
		return m, scheduleStatusTick()

	case feedbackSubmittedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("feedback submission failed")
			return m, m.notify(notify.LevelError, "could not record feedback: "+msg.err.Error())
		}
		if m.bus == nil {
			return m, m.notify(notify.LevelInfo, fmt.Sprintf("feedback #%d recorded, thank you", msg.feedback.ID))
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.CloseDrawer):
			m.state.SetDrawerState(citation.DrawerClosed)
			return m, nil
		}

	case tea.MouseMsg:
		msg.X -= styles.TooltipStyle.GetBorderLeftSize() + styles.TooltipStyle.GetPaddingLeft()
		msg.Y -= styles.TooltipStyle.GetBorderTopSize() + styles.TooltipStyle.GetPaddingTop()
		var cmd tea.Cmd
		m.tooltip, cmd = m.tooltip.Update(msg)
		return m, cmd

	case components.FeedbackRequestedMsg:
		if !m.cfg.Feedback.Enabled {
			return m, m.notify(notify.LevelWarning, "feedback is disabled in the config")
		}
		m.form = components.NewFeedbackForm(msg.Context, min(m.cfg.TUI.Width, 60))
		return m, m.form.Init()

	case citationview.PaperSelectedMsg:
		m.log.Debug().Str("citation_id", msg.CitationID).Str("paper_id", msg.PaperID).Msg("paper selected")
		return m, nil

	case citationview.ClosedMsg:
		return m.quit()
	}

	var cmd tea.Cmd
	m.tooltip, cmd = m.tooltip.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m.quit()
	}

	cmd := m.form.Update(msg)

	switch {
	case m.form.Completed():
		fb := m.form.Result()
		m.form = nil
		return m, m.submitFeedback(fb)
	case m.form.Aborted():
		m.form = nil
		return m, m.notify(notify.LevelInfo, "feedback cancelled")
	}
	return m, cmd
}

func (m Model) submitFeedback(fb feedback.Feedback) tea.Cmd {
	svc := m.feedback
	return func() tea.Msg {
		stored, err := svc.Submit(context.Background(), fb)
		return feedbackSubmittedMsg{feedback: stored, err: err}
	}
}

// notify shows a message without going through the bus.
func (m Model) notify(level notify.Level, message string) tea.Cmd {
	m.status.Push(notify.Notification{Level: level, Message: message, CreatedAt: time.Now()})
	return m.startStatusTick()
}

func (m Model) startStatusTick() tea.Cmd {
	if m.status.ticking || m.status.Empty() {
		return nil
	}
	m.status.ticking = true
	return scheduleStatusTick()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.bus != nil {
		m.bus.PublishTuiStopped(eventbus.TUIStoppedPayload{})
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := m.renderTooltip()

	var side string
	if m.form != nil {
		side = m.form.View()
	} else {
		side = renderDrawer(m.state.Snapshot(), m.papers, drawerWidth)
	}
	if side != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", side)
	}

	footer := m.help.View(m.keys)
	if status := m.status.View(m.width); status != "" {
		footer = status + "\n" + footer
	}

	return main + "\n" + footer
}

// renderTooltip is the error boundary around the tooltip: paper render
// failures replace the tooltip with an error panel.
func (m Model) renderTooltip() string {
	body, err := m.tooltip.Render()
	if err != nil {
		title := styles.TextErrorStyle.Bold(true).Render("Could not show this citation")
		return styles.ErrorPanelStyle.Render(title + "\n\n" + err.Error())
	}
	return styles.TooltipStyle.Render(body)
}
