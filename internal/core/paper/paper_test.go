package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaper_Validate(t *testing.T) {
	assert.NoError(t, Paper{ID: "p1", Title: "Attention"}.Validate())
	assert.ErrorIs(t, Paper{Title: "Attention"}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Paper{ID: "p1", Title: " "}.Validate(), ErrInvalid)
}

func TestPaper_AuthorLine(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{name: "none", want: ""},
		{name: "one", authors: []string{"Lo"}, want: "Lo"},
		{name: "three", authors: []string{"A", "B", "C"}, want: "A, B, C"},
		{name: "four", authors: []string{"A", "B", "C", "D"}, want: "A, B, C et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paper{Authors: tt.authors}.AuthorLine())
		})
	}
}

func TestPaper_Byline(t *testing.T) {
	p := Paper{Authors: []string{"Head", "Lo"}, Venue: "CHI", Year: 2021}
	assert.Equal(t, "Head, Lo · CHI · 2021", p.Byline())
	assert.Equal(t, "2021", Paper{Year: 2021}.Byline())
	assert.Equal(t, "", Paper{}.Byline())
}

func TestIndex(t *testing.T) {
	idx := NewIndex([]Paper{
		{ID: "p1", Title: "First"},
		{ID: "p2", Title: "Second"},
		{ID: "p1", Title: "First, revised"},
	})

	p, ok := idx.Paper("p1")
	assert.True(t, ok)
	assert.Equal(t, "First, revised", p.Title)

	_, ok = idx.Paper("p3")
	assert.False(t, ok)
}
