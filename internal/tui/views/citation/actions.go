package citation

import (
	"fmt"

	"github.com/colonyops/citereader/internal/core/citation"
)

// Mutators are the reader state capabilities the tooltip writes to. The
// tooltip never reads reader state.
type Mutators interface {
	SetSelectedCitation(c citation.Citation)
	SetDrawerState(s citation.DrawerState)
	SetJumpPaperID(paperID string)
}

// MutatorFuncs adapts three functions to Mutators. All three are required.
type MutatorFuncs struct {
	SelectedCitation func(citation.Citation)
	DrawerState      func(citation.DrawerState)
	JumpPaperID      func(string)
}

func (f MutatorFuncs) SetSelectedCitation(c citation.Citation) { f.SelectedCitation(c) }
func (f MutatorFuncs) SetDrawerState(s citation.DrawerState)   { f.DrawerState(s) }
func (f MutatorFuncs) SetJumpPaperID(paperID string)           { f.JumpPaperID(paperID) }

// Validate reports ErrConfiguration for every missing function.
func (f MutatorFuncs) Validate() error {
	switch {
	case f.SelectedCitation == nil:
		return fmt.Errorf("%w: setSelectedCitation is not set", citation.ErrConfiguration)
	case f.DrawerState == nil:
		return fmt.Errorf("%w: setDrawerState is not set", citation.ErrConfiguration)
	case f.JumpPaperID == nil:
		return fmt.Errorf("%w: setJumpPaperId is not set", citation.ErrConfiguration)
	}
	return nil
}

// Actions performs the tooltip's selection protocol against reader state.
type Actions struct {
	mutators Mutators
}

// NewActions checks that every mutator capability is present.
func NewActions(m Mutators) (*Actions, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: reader state mutators are nil", citation.ErrConfiguration)
	}
	if v, ok := m.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &Actions{mutators: m}, nil
}

// SelectPaper records c as the selected citation, opens the citations drawer
// and sets the jump target to paperID, in that order.
func (a *Actions) SelectPaper(c citation.Citation, paperID string) {
	a.mutators.SetSelectedCitation(c)
	a.mutators.SetDrawerState(citation.DrawerShowCitations)
	a.mutators.SetJumpPaperID(paperID)
}
