package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/citereader/internal/core/styles"
	"github.com/colonyops/citereader/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "citereader config validate [options]",
				Description: "Validates the configuration file and checks that the data directory is usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	errs, err := fieldErrors(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.format == "json" {
		if err := iojson.Write(out, struct {
			Valid  bool              `json:"valid"`
			Errors []validationError `json:"errors,omitempty"`
		}{Valid: len(errs) == 0, Errors: errs}); err != nil {
			return err
		}
	} else {
		for _, e := range errs {
			_, _ = fmt.Fprintln(out, styles.TextErrorStyle.Render("✗ "+e.Field+": "+e.Message))
		}
		if len(errs) == 0 {
			_, _ = fmt.Fprintln(out, styles.TextSuccessStyle.Render("✓ Configuration is valid"))
		} else {
			_, _ = fmt.Fprintf(out, "\n%d error(s) found\n", len(errs))
		}
	}

	if len(errs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// fieldErrors flattens criterio field errors; any other error is returned as is.
func fieldErrors(err error) ([]validationError, error) {
	if err == nil {
		return nil, nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return nil, err
	}

	out := make([]validationError, 0, len(fe))
	for _, e := range fe {
		out = append(out, validationError{Field: e.Field, Message: e.Err.Error()})
	}
	return out, nil
}
