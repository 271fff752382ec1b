package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/reader"
	"github.com/colonyops/citereader/pkg/iojson"
)

type PapersCmd struct {
	flags *Flags
	app   *reader.App

	// flags
	jsonOutput bool
}

// NewPapersCmd creates a new papers command
func NewPapersCmd(flags *Flags, app *reader.App) *PapersCmd {
	return &PapersCmd{flags: flags, app: app}
}

// Register adds the papers command to the application
func (cmd *PapersCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "papers",
		Usage: "Manage the local paper catalog",
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import papers from a YAML or JSON catalog",
				UsageText: "citereader papers import [FILE]",
				Description: `Reads a catalog with a top-level 'papers' list and stores every entry.
Existing papers with the same id are replaced. Reads stdin when FILE is
omitted or '-'. Nothing is stored if any entry is invalid.`,
				Action: cmd.runImport,
			},
			{
				Name:      "ls",
				Usage:     "List papers in the catalog",
				UsageText: "citereader papers ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
		},
	})

	return app
}

func (cmd *PapersCmd) runImport(ctx context.Context, c *cli.Command) error {
	in, err := iojson.Open(c.Args().First())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	n, err := cmd.app.Papers.Import(ctx, in)
	if err != nil {
		return fmt.Errorf("import papers: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d paper(s)\n", n)
	return nil
}

func (cmd *PapersCmd) runList(ctx context.Context, c *cli.Command) error {
	papers, err := cmd.app.Papers.List(ctx)
	if err != nil {
		return fmt.Errorf("list papers: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, p := range papers {
			if err := iojson.WriteLine(out, p); err != nil {
				return fmt.Errorf("encode paper: %w", err)
			}
		}
		return nil
	}

	if len(papers) == 0 {
		fmt.Fprintf(os.Stderr, "No papers found\n")
		return nil
	}

	writePaperTable(out, papers)
	return nil
}

func writePaperTable(out io.Writer, papers []paper.Paper) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tYEAR\tTITLE\tAUTHORS")

	for _, p := range papers {
		year := ""
		if p.Year > 0 {
			year = fmt.Sprint(p.Year)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, year, p.Title, p.AuthorLine())
	}

	_ = w.Flush()
}
