// Package render formats parsed tasks as markdown text blocks.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmountain/report/internal/core/config"
	"github.com/bmountain/report/internal/core/task"
)

// Separator divides successive task blocks in the rendered output.
const Separator = "\n\n-----\n\n"

// StateLabel returns the configured display string for a state.
func StateLabel(states config.States, s task.State) string {
	switch s {
	case task.StateOngoing:
		return states.Ongoing
	case task.StateDone:
		return states.Done
	case task.StateCancelled:
		return states.Cancelled
	default:
		return states.Todo
	}
}

// Report renders the full hierarchical report: the configured header,
// one table block per parent task separated by rule lines, then the
// configured footer.
func Report(tasks []task.Task, cfg *config.Config, today time.Time) string {
	blocks := make([]string, 0, len(tasks))
	for _, t := range tasks {
		blocks = append(blocks, Table(t, cfg, today))
	}
	return strings.Join([]string{cfg.Header, strings.Join(blocks, Separator), cfg.Footer}, "\n\n")
}

// Table renders one parent task: a header line joining its title, state
// label, and start~done range, then a markdown table of its children.
//
// Row styling: a cancelled child's cells are struck through; otherwise a
// child starting or finishing today is bolded. Cancellation wins when
// both would apply.
func Table(t task.Task, cfg *config.Config, today time.Time) string {
	header := strings.Join([]string{
		t.Title,
		StateLabel(cfg.States, t.State),
		fmtDate(t.StartDate) + "~" + fmtDate(t.DoneDate),
	}, "   ")

	rows := make([][]string, 0, len(t.Children))
	for _, sub := range t.Children {
		cells := []string{
			sub.Title,
			StateLabel(cfg.States, sub.State),
			fmtDate(sub.StartDate),
			fmtDate(sub.DoneDate),
		}
		switch {
		case sub.State == task.StateCancelled:
			wrapCells(cells, "~~")
		case task.SameDay(today, sub.StartDate) || task.SameDay(today, sub.DoneDate):
			wrapCells(cells, "**")
		}
		rows = append(rows, cells)
	}

	headers := []string{
		cfg.Columns.Title,
		cfg.Columns.State,
		cfg.Columns.StartDate,
		cfg.Columns.DoneDate,
	}

	return header + "\n\n" + markdownTable(headers, rows)
}

// TagBlocks renders tag-grouped tasks: each block labeled with the
// taxonomy display names for its tag pair, content emitted verbatim.
func TagBlocks(tasks []task.Task, tax task.Taxonomy) string {
	blocks := make([]string, 0, len(tasks))
	for _, t := range tasks {
		label := fmt.Sprintf("## %s / %s",
			tax.Classify(t.ParentTag, task.LevelParent).Name,
			tax.Classify(t.ChildTag, task.LevelChild).Name,
		)
		blocks = append(blocks, label+"\n\n"+t.Content)
	}
	return strings.Join(blocks, Separator)
}

func fmtDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("01/02")
}

func wrapCells(cells []string, mark string) {
	for i, c := range cells {
		if c != "" {
			cells[i] = mark + c + mark
		}
	}
}

// markdownTable emits a left-aligned pipe table with cells padded to the
// widest entry of each column, header included.
func markdownTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))+1))
		}
		b.WriteString("|\n")
	}

	writeRow(headers)
	for i := range headers {
		b.WriteString("|:")
		b.WriteString(strings.Repeat("-", widths[i]+1))
	}
	b.WriteString("|\n")
	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimRight(b.String(), "\n")
}
