package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bmountain/report/internal/core/styles"
)

// ConfigCmd implements the config command group.
type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "report config validate",
				Description: "Validates the configuration file, checking required fields and the tag taxonomy.",
				Action:      cmd.runValidate,
			},
		},
	})
	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	// Load already validated in the Before hook; getting here means the
	// file parsed and passed. Re-run Validate anyway so this command
	// stays meaningful if the hook ever stops validating.
	if err := cmd.flags.Config.Validate(); err != nil {
		_, _ = fmt.Fprintln(w, styles.Error.Render("invalid: ")+err.Error())
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintln(w, styles.Success.Render("Configuration is valid"))
	_, _ = fmt.Fprintln(w, styles.Muted.Render(cmd.flags.ConfigPath))
	return nil
}
