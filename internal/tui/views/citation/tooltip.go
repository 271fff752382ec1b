package citation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/styles"
)

const (
	defaultWidth = 64
	gutterWidth  = 5 // cursor marker (2) + index (3)
)

// PaperRenderer renders the summary of one paper. Errors are returned to the
// caller of Tooltip.Render unchanged apart from wrapping.
type PaperRenderer interface {
	RenderPaper(paperID string, width int) (string, error)
}

// PaperSelectedMsg is emitted after a paper entry was selected and the reader
// state mutations were issued.
type PaperSelectedMsg struct {
	CitationID string
	PaperID    string
}

// ClosedMsg is emitted when the user dismisses the tooltip.
type ClosedMsg struct{}

// Tooltip is the Bubble Tea sub-model for one tooltip display. Its only own
// state is the keyboard cursor and layout width.
type Tooltip struct {
	props   Props
	body    Body
	actions *Actions
	papers  PaperRenderer
	keys    KeyMap
	cursor  int
	width   int
}

// New creates a tooltip for props. It fails with ErrMalformedProps for invalid
// props and ErrConfiguration when actions or papers are missing.
func New(props Props, actions *Actions, papers PaperRenderer) (Tooltip, error) {
	if err := props.Validate(); err != nil {
		return Tooltip{}, err
	}
	if actions == nil {
		return Tooltip{}, fmt.Errorf("%w: tooltip actions are nil", citation.ErrConfiguration)
	}
	if papers == nil {
		return Tooltip{}, fmt.Errorf("%w: paper renderer is nil", citation.ErrConfiguration)
	}

	return Tooltip{
		props:   props,
		body:    Render(props),
		actions: actions,
		papers:  papers,
		keys:    DefaultKeyMap(),
		width:   defaultWidth,
	}, nil
}

// Body returns the view description the tooltip lays out.
func (t Tooltip) Body() Body {
	return t.body
}

// Cursor returns the index of the entry under the keyboard cursor.
func (t Tooltip) Cursor() int {
	return t.cursor
}

// Keys returns the tooltip key bindings.
func (t Tooltip) Keys() KeyMap {
	return t.keys
}

// SetWidth sets the content width in cells.
func (t *Tooltip) SetWidth(width int) {
	if width < gutterWidth+10 {
		width = gutterWidth + 10
	}
	t.width = width
}

// Update handles key presses and mouse clicks. Mouse coordinates must be
// relative to the top-left corner of the tooltip content.
func (t Tooltip) Update(msg tea.Msg) (Tooltip, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKey(msg)
	case tea.MouseMsg:
		return t.handleMouse(msg)
	}
	return t, nil
}

func (t Tooltip) handleKey(msg tea.KeyMsg) (Tooltip, tea.Cmd) {
	entries := t.body.List.Entries

	switch {
	case key.Matches(msg, t.keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, t.keys.Down):
		if t.cursor < len(entries)-1 {
			t.cursor++
		}
	case key.Matches(msg, t.keys.Select):
		return t, t.selectEntry(t.cursor)
	case key.Matches(msg, t.keys.Jump):
		var n int
		if _, err := fmt.Sscanf(msg.String(), "%d", &n); err == nil {
			return t, t.selectEntry(n - 1)
		}
	case key.Matches(msg, t.keys.Feedback):
		return t, t.body.Header.Feedback.Trigger()
	case key.Matches(msg, t.keys.Close):
		return t, func() tea.Msg { return ClosedMsg{} }
	}
	return t, nil
}

func (t Tooltip) handleMouse(msg tea.MouseMsg) (Tooltip, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return t, nil
	}
	if msg.X < 0 || msg.X >= t.width {
		return t, nil
	}
	return t, t.selectEntry(t.entryAt(msg.Y))
}

// selectEntry runs the selection protocol for entry i. The tooltip itself is
// left untouched.
func (t Tooltip) selectEntry(i int) tea.Cmd {
	entries := t.body.List.Entries
	if i < 0 || i >= len(entries) {
		return nil
	}

	paperID := entries[i].PaperID
	t.actions.SelectPaper(t.props.Citation, paperID)

	citationID := t.props.Citation.ID
	return func() tea.Msg {
		return PaperSelectedMsg{CitationID: citationID, PaperID: paperID}
	}
}

// entryAt maps a content row to an entry index, or -1.
func (t Tooltip) entryAt(y int) int {
	blocks, err := t.renderEntries()
	if err != nil {
		return -1
	}

	top := lipgloss.Height(t.renderHeader()) + 1 // caption line
	for i, block := range blocks {
		h := lipgloss.Height(block)
		if y >= top && y < top+h {
			return i
		}
		top += h
	}
	return -1
}

// Render lays out the body. Errors from the paper renderer are returned as is
// (wrapped with the paper id) so an enclosing error boundary can show them.
func (t Tooltip) Render() (string, error) {
	blocks, err := t.renderEntries()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(blocks)+2)
	parts = append(parts,
		t.renderHeader(),
		styles.TooltipCaptionStyle.Render(t.body.List.AriaLabel),
	)
	parts = append(parts, blocks...)

	return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
}

func (t Tooltip) renderHeader() string {
	label := styles.TooltipLabelStyle.Render(t.body.Header.Label)
	button := t.body.Header.Feedback.View()

	gap := max(t.width-lipgloss.Width(label)-lipgloss.Width(button), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, label, strings.Repeat(" ", gap), button)
}

func (t Tooltip) renderEntries() ([]string, error) {
	entries := t.body.List.Entries
	blocks := make([]string, 0, len(entries))

	for i, e := range entries {
		card, err := t.papers.RenderPaper(e.PaperID, t.width-gutterWidth)
		if err != nil {
			return nil, fmt.Errorf("render paper %s: %w", e.PaperID, err)
		}

		marker := "  "
		if i == t.cursor {
			marker = styles.TooltipCursorStyle.Render("▸ ")
		}
		index := styles.TooltipIndexStyle.Render(fmt.Sprintf("%2d ", i+1))

		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, marker+index, styles.TooltipEntryStyle.Render(card)))
	}

	return blocks, nil
}
