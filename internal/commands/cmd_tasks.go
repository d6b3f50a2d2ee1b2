package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bmountain/report/internal/core/render"
	"github.com/bmountain/report/internal/core/task"
)

// TasksCmd renders today's note as a hierarchical task report: one table
// of sub-tasks per parent task. It is also the default action when the
// binary runs without a subcommand.
type TasksCmd struct {
	flags *Flags
}

// NewTasksCmd creates a new tasks command.
func NewTasksCmd(flags *Flags) *TasksCmd {
	return &TasksCmd{flags: flags}
}

// Register adds the tasks command to the application.
func (cmd *TasksCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tasks",
		Usage:     "Show today's tasks as per-parent tables",
		UsageText: "report tasks [--plain]",
		Description: `Reads today's daily note and renders its checklist as a task report.

Each top-level checklist entry becomes a section headed by its title,
state, and start~done range, followed by a markdown table of its
indented sub-tasks. Sub-tasks starting or finishing today are bolded;
cancelled ones are struck through.

Examples:
  report tasks
  report tasks --plain > today.md
  report --date 2026-08-24 tasks`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the hierarchical report pipeline.
func (cmd *TasksCmd) Run(ctx context.Context, c *cli.Command) error {
	lines, err := cmd.flags.taskLines()
	if err != nil {
		return err
	}

	tasks, err := task.BuildTree(lines, cmd.flags.Today)
	if err != nil {
		return err
	}

	md := render.Report(tasks, cmd.flags.Config, cmd.flags.Today)
	return writeMarkdown(c, md, cmd.flags.Plain)
}
