package reader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/eventbus/testbus"
	citationview "github.com/colonyops/citereader/internal/tui/views/citation"
)

func TestState_Defaults(t *testing.T) {
	s := NewState(nil)
	snap := s.Snapshot()

	assert.Nil(t, snap.SelectedCitation)
	assert.Equal(t, citation.DrawerClosed, snap.Drawer)
	assert.Empty(t, snap.JumpPaperID)
}

func TestState_SelectionPublishesInOrder(t *testing.T) {
	tb := testbus.New(t)
	s := NewState(tb.EventBus)

	c := citation.Citation{ID: "c1", PaperIDs: []string{"p1", "p2"}}
	s.SetSelectedCitation(c)
	s.SetDrawerState(citation.DrawerShowCitations)
	s.SetJumpPaperID("p2")

	require.True(t, tb.WaitFor(eventbus.EventJumpPaperChanged, time.Second))
	assert.Equal(t, []eventbus.Event{
		eventbus.EventCitationSelected,
		eventbus.EventDrawerChanged,
		eventbus.EventJumpPaperChanged,
	}, tb.Names())

	events := tb.Events()
	assert.Equal(t, c, events[0].Payload.(eventbus.CitationSelectedPayload).Citation)
	assert.Equal(t, eventbus.DrawerChangedPayload{
		Old: citation.DrawerClosed,
		New: citation.DrawerShowCitations,
	}, events[1].Payload)
	assert.Equal(t, "p2", events[2].Payload.(eventbus.JumpPaperChangedPayload).PaperID)

	snap := s.Snapshot()
	require.NotNil(t, snap.SelectedCitation)
	assert.Equal(t, "c1", snap.SelectedCitation.ID)
	assert.Equal(t, citation.DrawerShowCitations, snap.Drawer)
	assert.Equal(t, "p2", snap.JumpPaperID)
}

func TestState_DrawerUnchangedDoesNotPublish(t *testing.T) {
	tb := testbus.New(t)
	s := NewState(tb.EventBus)

	s.SetDrawerState(citation.DrawerClosed)
	tb.AssertNotPublished(t, eventbus.EventDrawerChanged, 50*time.Millisecond)
}

func TestState_UnknownDrawerIgnored(t *testing.T) {
	s := NewState(nil)
	s.SetDrawerState(citation.DrawerShowCitations)
	s.SetDrawerState(citation.DrawerState("sideways"))

	assert.Equal(t, citation.DrawerShowCitations, s.Snapshot().Drawer)
}

func TestState_CloseDrawer(t *testing.T) {
	tb := testbus.New(t)
	s := NewState(tb.EventBus)

	s.SetDrawerState(citation.DrawerShowSymbols)
	s.CloseDrawer()

	require.True(t, tb.WaitFor(eventbus.EventDrawerChanged, time.Second))
	assert.Eventually(t, func() bool { return len(tb.Events()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, citation.DrawerClosed, s.Snapshot().Drawer)
}

func TestState_SnapshotIsACopy(t *testing.T) {
	s := NewState(nil)
	ids := []string{"p1"}
	s.SetSelectedCitation(citation.Citation{ID: "c1", PaperIDs: ids})
	ids[0] = "changed"

	snap := s.Snapshot()
	snap.SelectedCitation.PaperIDs[0] = "also-changed"

	assert.Equal(t, []string{"p1"}, s.Snapshot().SelectedCitation.PaperIDs)
}

func TestState_DrivenByTooltipActions(t *testing.T) {
	tb := testbus.New(t)
	s := NewState(tb.EventBus)

	actions, err := citationview.NewActions(s)
	require.NoError(t, err)

	c := citation.Citation{ID: "c1", PaperIDs: []string{"p1", "p2"}}
	actions.SelectPaper(c, "p1")

	snap := s.Snapshot()
	require.NotNil(t, snap.SelectedCitation)
	assert.Equal(t, c, *snap.SelectedCitation)
	assert.Equal(t, citation.DrawerShowCitations, snap.Drawer)
	assert.Equal(t, "p1", snap.JumpPaperID)
	tb.AssertPublished(t, eventbus.EventJumpPaperChanged)
}
