package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/citereader/internal/reader"
	"github.com/colonyops/citereader/internal/tui"
)

type ShowCmd struct {
	flags *Flags
	app   *reader.App

	// flags
	citationFile string
	noMouse      bool
	inline       bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *reader.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Open the citation tooltip for a citation file",
		UsageText: "citereader show --citation FILE [--no-mouse] [--inline]",
		Description: `Opens the interactive tooltip listing the papers a citation was matched to.

The citation file is YAML with a 'citation' block (id, label, paper_ids) and an
optional 'papers' list. Inline papers are saved to the catalog before the
tooltip opens; ids without metadata are shown as placeholders.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "citation",
				Aliases:     []string{"f"},
				Usage:       "path to the citation file",
				Required:    true,
				Destination: &cmd.citationFile,
			},
			&cli.BoolFlag{
				Name:        "no-mouse",
				Usage:       "disable mouse support",
				Destination: &cmd.noMouse,
			},
			&cli.BoolFlag{
				Name:        "inline",
				Usage:       "render in the current screen instead of the alternate screen",
				Destination: &cmd.inline,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, _ *cli.Command) error {
	doc, err := reader.LoadDocument(cmd.citationFile)
	if err != nil {
		return fmt.Errorf("load citation: %w", err)
	}

	if err := cmd.app.Papers.Save(ctx, doc.Papers); err != nil {
		return fmt.Errorf("save inline papers: %w", err)
	}

	papers, err := cmd.app.Papers.Index(ctx, doc.Citation.PaperIDs)
	if err != nil {
		return err
	}

	model, err := tui.New(tui.Options{
		Config:   cmd.app.Config,
		Citation: doc.Citation,
		Papers:   papers,
		State:    cmd.app.State,
		Feedback: cmd.app.Feedback,
		Bus:      cmd.app.Bus,
	})
	if err != nil {
		return fmt.Errorf("create tui: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cmd.inline {
		opts = append(opts, tea.WithAltScreen())
	}
	if !cmd.noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info().
		Str("citation_id", doc.Citation.ID).
		Int("papers", len(doc.Citation.PaperIDs)).
		Msg("opening citation tooltip")

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
