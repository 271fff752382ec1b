// Package citation defines the citation record shown by the reader and the
// drawer modes the reader can switch between.
package citation

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedProps is returned when a citation or its paper ids violate
	// the caller contract (empty ids).
	ErrMalformedProps = errors.New("malformed citation props")

	// ErrConfiguration is returned when a required reader capability is missing.
	ErrConfiguration = errors.New("configuration error")
)

// Citation identifies one in-document citation occurrence.
type Citation struct {
	ID       string   `yaml:"id" json:"id"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	PaperIDs []string `yaml:"paper_ids" json:"paper_ids"`
}

// Validate checks that the citation carries an id and that none of its paper
// ids are blank.
func (c Citation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: citation id is empty", ErrMalformedProps)
	}
	for i, id := range c.PaperIDs {
		if id == "" {
			return fmt.Errorf("%w: paper_ids[%d] is empty", ErrMalformedProps, i)
		}
	}
	return nil
}

// DrawerState names which secondary panel the reader shows.
type DrawerState string

const (
	DrawerClosed        DrawerState = "closed"
	DrawerShowCitations DrawerState = "show-citations"
	DrawerShowSymbols   DrawerState = "show-symbols"
)

// Valid reports whether s is one of the known drawer states.
func (s DrawerState) Valid() bool {
	switch s {
	case DrawerClosed, DrawerShowCitations, DrawerShowSymbols:
		return true
	}
	return false
}

func (s DrawerState) String() string {
	return string(s)
}
