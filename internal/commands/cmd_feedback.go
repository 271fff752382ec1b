package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/citereader/internal/reader"
	"github.com/colonyops/citereader/pkg/iojson"
)

type FeedbackCmd struct {
	flags *Flags
	app   *reader.App

	// flags
	jsonOutput bool
}

// NewFeedbackCmd creates a new feedback command
func NewFeedbackCmd(flags *Flags, app *reader.App) *FeedbackCmd {
	return &FeedbackCmd{flags: flags, app: app}
}

// Register adds the feedback command to the application
func (cmd *FeedbackCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "feedback",
		Usage: "Inspect feedback submitted from the tooltip",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List feedback reports, newest first",
				UsageText: "citereader feedback ls [--json]",
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

func (cmd *FeedbackCmd) runList(ctx context.Context, c *cli.Command) error {
	items, err := cmd.app.Feedback.List(ctx)
	if err != nil {
		return fmt.Errorf("list feedback: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, f := range items {
			if err := iojson.WriteLine(out, f); err != nil {
				return fmt.Errorf("encode feedback: %w", err)
			}
		}
		return nil
	}

	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "No feedback found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCREATED\tKIND\tCONTEXT\tCOMMENT")
	for _, f := range items {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			f.ID, f.CreatedAt.Format(time.DateTime), f.Kind, f.ContextString(), f.Comment)
	}
	_ = w.Flush()

	return nil
}
