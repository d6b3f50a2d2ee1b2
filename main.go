package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/bmountain/report/internal/commands"
	"github.com/bmountain/report/internal/core/config"
	"github.com/bmountain/report/internal/core/note"
	"github.com/bmountain/report/internal/core/styles"
	"github.com/bmountain/report/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "report",
		Usage:     "Render today's daily-note tasks in the terminal",
		UsageText: "report [global options] command [command options]",
		Description: `Report reads today's daily note, parses its checklist into a task
hierarchy, and prints a formatted markdown report.

Run 'report' with no arguments for the per-parent task tables.
Run 'report tags' for the tag-grouped view.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REPORT_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("REPORT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REPORT_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "date",
				Usage:       "treat this date as today (YYYY-MM-DD)",
				Destination: &flags.Date,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown instead of terminal rendering",
				Destination: &flags.Plain,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			if err := flags.ResolveToday(); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tasksCmd := commands.NewTasksCmd(flags)

	app = tasksCmd.Register(app)
	app = commands.NewTagsCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Default to the hierarchical task report when no subcommand is given.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'report --help' for usage", c.Args().First())
		}
		return tasksCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			// A missing note is a normal state, not a retryable failure.
			fmt.Println(styles.Muted.Render("No tasks today: " + err.Error()))
		} else {
			fmt.Println(styles.Error.Render("error: ") + err.Error())
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
