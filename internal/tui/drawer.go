package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/core/styles"
	"github.com/colonyops/citereader/internal/reader"
)

const drawerWidth = 36

// renderDrawer shows the side panel for the current reader state. It returns
// "" when the drawer is closed.
func renderDrawer(snap reader.Snapshot, papers paper.Index, width int) string {
	width = max(width, 16)

	var lines []string
	switch snap.Drawer {
	case citation.DrawerShowCitations:
		lines = drawerCitationLines(snap, papers, width)
	case citation.DrawerShowSymbols:
		lines = []string{
			styles.DrawerTitleStyle.Render("Symbols"),
			styles.TextMutedStyle.Render("no symbols in this document"),
		}
	default:
		return ""
	}

	return styles.DrawerStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func drawerCitationLines(snap reader.Snapshot, papers paper.Index, width int) []string {
	lines := []string{styles.DrawerTitleStyle.Render("Citations")}

	if snap.SelectedCitation == nil {
		return append(lines, styles.TextMutedStyle.Render("no citation selected"))
	}

	c := snap.SelectedCitation
	heading := c.ID
	if c.Label != "" {
		heading = c.Label + " " + c.ID
	}
	lines = append(lines, styles.TextMutedStyle.Render(ansi.Truncate(heading, width, "…")), "")

	for _, id := range c.PaperIDs {
		title := id
		if p, ok := papers.Paper(id); ok {
			title = p.Title
		}

		line := ansi.Truncate("  "+title, width, "…")
		if id == snap.JumpPaperID {
			line = styles.TooltipCursorStyle.Render(ansi.Truncate("→ "+title, width, "…"))
		}
		lines = append(lines, line)
	}

	if snap.JumpPaperID != "" {
		lines = append(lines, "", styles.StatusLineStyle.Render(fmt.Sprintf("jump: %s", snap.JumpPaperID)))
	}
	return lines
}
