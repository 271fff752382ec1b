package components

import (
	"errors"
	"maps"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/colonyops/citereader/internal/core/feedback"
	"github.com/colonyops/citereader/internal/core/styles"
)

// FeedbackForm collects a feedback report for a given context bag.
type FeedbackForm struct {
	form    *huh.Form
	context map[string]string
	kind    feedback.Kind
	comment string
}

// NewFeedbackForm creates a form whose result carries ctx.
func NewFeedbackForm(ctx map[string]string, width int) *FeedbackForm {
	f := &FeedbackForm{
		context: maps.Clone(ctx),
		kind:    feedback.KindWrongMatch,
	}

	options := make([]huh.Option[feedback.Kind], 0, len(feedback.Kinds()))
	for _, k := range feedback.Kinds() {
		options = append(options, huh.NewOption(k.Label(), k))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[feedback.Kind]().
				Title("What is wrong with this citation?").
				Options(options...).
				Value(&f.kind),
			huh.NewText().
				Title("Comment").
				Placeholder("optional unless 'Something else'").
				Value(&f.comment).
				Validate(f.validateComment),
		),
	).WithShowHelp(true)

	if width > 0 {
		f.form = f.form.WithWidth(width)
	}

	return f
}

func (f *FeedbackForm) validateComment(s string) error {
	if f.kind == feedback.KindOther && strings.TrimSpace(s) == "" {
		return errors.New("please describe the problem")
	}
	return nil
}

// Init returns the form's initial command.
func (f *FeedbackForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards msg to the underlying form.
func (f *FeedbackForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// View renders the form inside a modal frame.
func (f *FeedbackForm) View() string {
	title := styles.ModalTitleStyle.Render("Report a problem")
	return styles.ModalStyle.Render(title + "\n\n" + f.form.View())
}

// Completed reports whether the user submitted the form.
func (f *FeedbackForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// Aborted reports whether the user cancelled the form.
func (f *FeedbackForm) Aborted() bool {
	return f.form.State == huh.StateAborted
}

// Result builds the feedback report from the current form values.
func (f *FeedbackForm) Result() feedback.Feedback {
	return feedback.Feedback{
		Kind:      f.kind,
		Comment:   strings.TrimSpace(f.comment),
		Context:   maps.Clone(f.context),
		CreatedAt: time.Now(),
	}
}
