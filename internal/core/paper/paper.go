// Package paper defines the metadata the reader shows for a cited paper.
package paper

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when paper metadata is missing required fields.
var ErrInvalid = errors.New("invalid paper")

// Paper is the summary shown for one candidate paper of a citation.
type Paper struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Authors  []string `yaml:"authors" json:"authors"`
	Year     int      `yaml:"year,omitempty" json:"year,omitempty"`
	Venue    string   `yaml:"venue,omitempty" json:"venue,omitempty"`
	Abstract string   `yaml:"abstract,omitempty" json:"abstract,omitempty"`
}

// Validate checks the id and title are present.
func (p Paper) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalid)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: paper %s has no title", ErrInvalid, p.ID)
	}
	return nil
}

// AuthorLine formats authors the way reference lists do: up to three names,
// then "et al.".
func (p Paper) AuthorLine() string {
	switch n := len(p.Authors); {
	case n == 0:
		return ""
	case n <= 3:
		return strings.Join(p.Authors, ", ")
	default:
		return strings.Join(p.Authors[:3], ", ") + " et al."
	}
}

// Byline joins the author line, venue, and year with " · ", skipping blanks.
func (p Paper) Byline() string {
	var parts []string
	if a := p.AuthorLine(); a != "" {
		parts = append(parts, a)
	}
	if p.Venue != "" {
		parts = append(parts, p.Venue)
	}
	if p.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", p.Year))
	}
	return strings.Join(parts, " · ")
}

// Index is an in-memory lookup of papers by id.
type Index map[string]Paper

// NewIndex builds an index; later duplicates replace earlier ones.
func NewIndex(papers []Paper) Index {
	idx := make(Index, len(papers))
	for _, p := range papers {
		idx[p.ID] = p
	}
	return idx
}

// Paper returns the paper with the given id.
func (i Index) Paper(id string) (Paper, bool) {
	p, ok := i[id]
	return p, ok
}
