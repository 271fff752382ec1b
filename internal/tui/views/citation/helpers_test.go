package citation

import (
	"errors"

	"github.com/colonyops/citereader/internal/core/citation"
)

type call struct {
	name string
	arg  any
}

// recorder implements Mutators and records every call in order.
type recorder struct {
	calls []call
}

func (r *recorder) SetSelectedCitation(c citation.Citation) {
	r.calls = append(r.calls, call{name: "setSelectedCitation", arg: c})
}

func (r *recorder) SetDrawerState(s citation.DrawerState) {
	r.calls = append(r.calls, call{name: "setDrawerState", arg: s})
}

func (r *recorder) SetJumpPaperID(paperID string) {
	r.calls = append(r.calls, call{name: "setJumpPaperId", arg: paperID})
}

var errRender = errors.New("paper renderer exploded")

// fakePapers renders one line per paper and fails for ids listed in failing.
type fakePapers struct {
	failing map[string]bool
	calls   []string
}

func (f *fakePapers) RenderPaper(paperID string, _ int) (string, error) {
	f.calls = append(f.calls, paperID)
	if f.failing[paperID] {
		return "", errRender
	}
	return "Paper " + paperID, nil
}
