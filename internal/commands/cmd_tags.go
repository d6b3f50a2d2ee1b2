package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bmountain/report/internal/core/render"
	"github.com/bmountain/report/internal/core/task"
)

// TagsCmd renders today's note grouped by tag classification instead of
// by note order: entries sharing a tag pair are merged into one block.
type TagsCmd struct {
	flags *Flags
}

// NewTagsCmd creates a new tags command.
func NewTagsCmd(flags *Flags) *TagsCmd {
	return &TagsCmd{flags: flags}
}

// Register adds the tags command to the application.
func (cmd *TagsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tags",
		Usage:     "Show today's tasks grouped by tag",
		UsageText: "report tags [--plain]",
		Description: `Reads today's daily note and renders its checklist grouped by tag.

Each top-level entry is classified by its #parent/child tag using the
configured taxonomy, blocks are ordered by the taxonomy's order keys,
and adjacent blocks with the same raw tag pair are merged. Entries
without a tag fall back to the configured default classification.

Examples:
  report tags
  report tags --plain`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the tag-grouping pipeline.
func (cmd *TagsCmd) Run(ctx context.Context, c *cli.Command) error {
	lines, err := cmd.flags.taskLines()
	if err != nil {
		return err
	}

	tasks, err := task.BuildBlocks(lines, cmd.flags.Today)
	if err != nil {
		return err
	}

	tax := cmd.flags.Taxonomy()
	grouped := task.GroupTasks(tasks, tax)

	md := render.TagBlocks(grouped, tax)
	return writeMarkdown(c, md, cmd.flags.Plain)
}
