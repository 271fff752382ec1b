package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/pkg/tuitest"
)

func TestFeedbackForm_ResultCarriesContext(t *testing.T) {
	ctx := map[string]string{"citationId": "c1"}
	f := NewFeedbackForm(ctx, 60)
	ctx["citationId"] = "mutated"

	got := f.Result()
	assert.Equal(t, feedback.KindWrongMatch, got.Kind)
	assert.Equal(t, map[string]string{"citationId": "c1"}, got.Context)
	require.NoError(t, got.Validate())
}

func TestFeedbackForm_CommentRequiredForOther(t *testing.T) {
	f := NewFeedbackForm(nil, 60)

	assert.NoError(t, f.validateComment(""))

	f.kind = feedback.KindOther
	assert.Error(t, f.validateComment("   "))
	assert.NoError(t, f.validateComment("title is wrong"))
}

func TestFeedbackForm_ResultTrimsComment(t *testing.T) {
	f := NewFeedbackForm(nil, 0)
	f.kind = feedback.KindOther
	f.comment = "  wrong year \n"

	assert.Equal(t, "wrong year", f.Result().Comment)
}

func TestFeedbackForm_View(t *testing.T) {
	f := NewFeedbackForm(nil, 60)
	f.Init()

	view := tuitest.StripANSI(f.View())
	assert.Contains(t, view, "Report a problem")
	assert.Contains(t, view, "What is wrong with this citation?")
	assert.False(t, f.Completed())
	assert.False(t, f.Aborted())
}
