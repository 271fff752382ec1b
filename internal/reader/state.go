// Package reader holds the services shared by the CLI and the TUI: the reader
// state container, the paper catalog and feedback submission.
package reader

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/core/logging"
)

// Snapshot is a read-only copy of reader state.
type Snapshot struct {
	SelectedCitation *citation.Citation
	Drawer           citation.DrawerState
	JumpPaperID      string
}

// State is the shared reader state. Views write to it through the setters;
// every change is announced on the bus so other panels can react.
type State struct {
	bus *eventbus.EventBus
	log zerolog.Logger

	mu       sync.RWMutex
	selected *citation.Citation
	drawer   citation.DrawerState
	jumpTo   string
}

// NewState creates state with the drawer closed. bus may be nil.
func NewState(bus *eventbus.EventBus) *State {
	return &State{
		bus:    bus,
		log:    logging.Component("reader"),
		drawer: citation.DrawerClosed,
	}
}

// SetSelectedCitation records c as the citation the reader is looking at.
func (s *State) SetSelectedCitation(c citation.Citation) {
	c.PaperIDs = append([]string(nil), c.PaperIDs...)

	s.mu.Lock()
	s.selected = &c
	s.mu.Unlock()

	s.log.Debug().Str("citation_id", c.ID).Msg("citation selected")
	if s.bus != nil {
		s.bus.PublishCitationSelected(eventbus.CitationSelectedPayload{Citation: c})
	}
}

// SetDrawerState switches the drawer mode. Unknown states are ignored.
func (s *State) SetDrawerState(d citation.DrawerState) {
	if !d.Valid() {
		s.log.Warn().Str("drawer", string(d)).Msg("ignoring unknown drawer state")
		return
	}

	s.mu.Lock()
	old := s.drawer
	s.drawer = d
	s.mu.Unlock()

	if old == d {
		return
	}

	s.log.Debug().Str("from", string(old)).Str("to", string(d)).Msg("drawer changed")
	if s.bus != nil {
		s.bus.PublishDrawerChanged(eventbus.DrawerChangedPayload{Old: old, New: d})
	}
}

// SetJumpPaperID sets the paper the citations drawer should scroll to.
func (s *State) SetJumpPaperID(paperID string) {
	s.mu.Lock()
	s.jumpTo = paperID
	s.mu.Unlock()

	s.log.Debug().Str("paper_id", paperID).Msg("jump target set")
	if s.bus != nil {
		s.bus.PublishJumpPaperChanged(eventbus.JumpPaperChangedPayload{PaperID: paperID})
	}
}

// CloseDrawer is shorthand for SetDrawerState(DrawerClosed).
func (s *State) CloseDrawer() {
	s.SetDrawerState(citation.DrawerClosed)
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Drawer: s.drawer, JumpPaperID: s.jumpTo}
	if s.selected != nil {
		c := *s.selected
		c.PaperIDs = append([]string(nil), c.PaperIDs...)
		snap.SelectedCitation = &c
	}
	return snap
}
