package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/core/styles"
)

// PaperLookup resolves paper metadata by id.
type PaperLookup interface {
	Paper(id string) (paper.Paper, bool)
}

// PaperCardOptions controls what a paper card shows.
type PaperCardOptions struct {
	ShowAbstract  bool
	AbstractLines int // 0 means no limit
}

type cardKey struct {
	id    string
	width int
}

// PaperCard renders the summary of one cited paper: title, byline and an
// optional markdown abstract. Rendered cards are cached per id and width, so a
// PaperCard must only be used from one goroutine.
type PaperCard struct {
	papers PaperLookup
	opts   PaperCardOptions
	cache  map[cardKey]string
}

// NewPaperCard creates a paper card renderer backed by papers.
func NewPaperCard(papers PaperLookup, opts PaperCardOptions) *PaperCard {
	return &PaperCard{papers: papers, opts: opts, cache: make(map[cardKey]string)}
}

// RenderPaper renders the paper with the given id at most width cells wide.
// Papers without metadata render as a muted placeholder.
func (c *PaperCard) RenderPaper(paperID string, width int) (string, error) {
	width = max(width, 10)

	k := cardKey{id: paperID, width: width}
	if card, ok := c.cache[k]; ok {
		return card, nil
	}

	card, err := c.render(paperID, width)
	if err != nil {
		return "", err
	}
	c.cache[k] = card
	return card, nil
}

func (c *PaperCard) render(paperID string, width int) (string, error) {
	p, ok := c.papers.Paper(paperID)
	if !ok {
		return styles.PaperMissingStyle.Render(ansi.Truncate(paperID+" (no metadata)", width, "…")), nil
	}

	lines := []string{styles.PaperTitleStyle.Render(ansi.Truncate(p.Title, width, "…"))}
	if byline := p.Byline(); byline != "" {
		lines = append(lines, styles.PaperBylineStyle.Render(ansi.Truncate(byline, width, "…")))
	}

	if c.opts.ShowAbstract && strings.TrimSpace(p.Abstract) != "" {
		abstract, err := c.renderAbstract(p.Abstract, width)
		if err != nil {
			return "", fmt.Errorf("render abstract for %s: %w", paperID, err)
		}
		lines = append(lines, abstract)
	}

	return strings.Join(lines, "\n"), nil
}

func (c *PaperCard) renderAbstract(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if n := c.opts.AbstractLines; n > 0 && len(lines) > n {
		lines = append(lines[:n], styles.TextMutedStyle.Render("…"))
	}
	return strings.Join(lines, "\n"), nil
}
