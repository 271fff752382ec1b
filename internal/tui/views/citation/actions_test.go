package citation

import (
	"testing"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions_SelectPaper(t *testing.T) {
	rec := &recorder{}
	actions, err := NewActions(rec)
	require.NoError(t, err)

	c := citation.Citation{ID: "c1"}
	actions.SelectPaper(c, "p2")

	assert.Equal(t, []call{
		{name: "setSelectedCitation", arg: c},
		{name: "setDrawerState", arg: citation.DrawerShowCitations},
		{name: "setJumpPaperId", arg: "p2"},
	}, rec.calls)
}

func TestNewActions_Nil(t *testing.T) {
	_, err := NewActions(nil)
	assert.ErrorIs(t, err, citation.ErrConfiguration)
}

func TestNewActions_MutatorFuncs(t *testing.T) {
	noop := MutatorFuncs{
		SelectedCitation: func(citation.Citation) {},
		DrawerState:      func(citation.DrawerState) {},
		JumpPaperID:      func(string) {},
	}

	tests := []struct {
		name    string
		mutate  func(*MutatorFuncs)
		wantErr string
	}{
		{name: "complete", mutate: func(*MutatorFuncs) {}},
		{name: "missing selected citation", mutate: func(f *MutatorFuncs) { f.SelectedCitation = nil }, wantErr: "setSelectedCitation"},
		{name: "missing drawer state", mutate: func(f *MutatorFuncs) { f.DrawerState = nil }, wantErr: "setDrawerState"},
		{name: "missing jump paper id", mutate: func(f *MutatorFuncs) { f.JumpPaperID = nil }, wantErr: "setJumpPaperId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			funcs := noop
			tt.mutate(&funcs)

			actions, err := NewActions(funcs)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, actions)
				return
			}
			require.ErrorIs(t, err, citation.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, actions)
		})
	}
}

func TestMutatorFuncs_Forwarding(t *testing.T) {
	var order []string
	funcs := MutatorFuncs{
		SelectedCitation: func(c citation.Citation) { order = append(order, "citation:"+c.ID) },
		DrawerState:      func(s citation.DrawerState) { order = append(order, "drawer:"+s.String()) },
		JumpPaperID:      func(id string) { order = append(order, "jump:"+id) },
	}

	actions, err := NewActions(funcs)
	require.NoError(t, err)
	actions.SelectPaper(citation.Citation{ID: "c1"}, "p1")

	assert.Equal(t, []string{"citation:c1", "drawer:show-citations", "jump:p1"}, order)
}
