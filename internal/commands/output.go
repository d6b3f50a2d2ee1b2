package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/bmountain/report/internal/core/note"
	"github.com/bmountain/report/internal/core/task"
)

// maxWrapWidth caps glamour word wrap on very wide terminals.
const maxWrapWidth = 100

// taskLines locates today's note and returns its checklist lines,
// filtered to the configured depth.
func (f *Flags) taskLines() ([]string, error) {
	path, err := note.Locate(f.Config.NoteDir, f.Config.NotePattern, f.Today)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("located daily note")

	lines, err := note.ReadLines(path)
	if err != nil {
		return nil, err
	}

	filtered := task.FilterLines(lines, f.Config.MaxDepth)
	log.Debug().Int("total", len(lines)).Int("checklist", len(filtered)).Msg("filtered note lines")
	return filtered, nil
}

// writeMarkdown prints a markdown document, rendered to ANSI via glamour
// when stdout is a terminal and --plain is not set.
func writeMarkdown(c *cli.Command, md string, plain bool) error {
	w := c.Root().Writer

	fd := int(os.Stdout.Fd())
	if plain || !term.IsTerminal(fd) {
		_, err := fmt.Fprintln(w, md)
		return err
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 || width > maxWrapWidth {
		width = maxWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}
