package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmountain/report/internal/core/config"
	"github.com/bmountain/report/internal/core/task"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.NoteDir = "/tmp/notes"
	cfg.Header = "# Today"
	cfg.Footer = "done."
	return &cfg
}

func TestTable(t *testing.T) {
	today := day(2024, time.June, 15)

	parent := task.Task{
		Title: "Errands",
		State: task.StateTodo,
		Children: []task.Task{
			{Title: "Buy milk", State: task.StateDone, DoneDate: day(2024, time.June, 10)},
		},
	}

	got := Table(parent, testConfig(), today)

	want := strings.Join([]string{
		"Errands   TODO   ~",
		"",
		"| Task     | State | Start | Done  |",
		"|:---------|:------|:------|:------|",
		"| Buy milk | DONE  |       | 06/10 |",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestTableHeaderDateRange(t *testing.T) {
	today := day(2024, time.June, 15)

	parent := task.Task{
		Title:     "Project",
		State:     task.StateOngoing,
		StartDate: day(2024, time.June, 1),
		DoneDate:  day(2024, time.June, 10),
	}

	got := Table(parent, testConfig(), today)
	assert.True(t, strings.HasPrefix(got, "Project   WIP   06/01~06/10"), got)
}

func TestTableRowStyling(t *testing.T) {
	today := day(2024, time.June, 15)

	tests := []struct {
		name     string
		child    task.Task
		wantCell string
		notCell  string
	}{
		{
			name:     "started today is bolded",
			child:    task.Task{Title: "Fresh", State: task.StateTodo, StartDate: today},
			wantCell: "| **Fresh** |",
			notCell:  "~~",
		},
		{
			name:     "finished today is bolded",
			child:    task.Task{Title: "Shipped", State: task.StateDone, DoneDate: today},
			wantCell: "| **Shipped** |",
			notCell:  "~~",
		},
		{
			name:     "cancelled is struck through",
			child:    task.Task{Title: "Dropped", State: task.StateCancelled},
			wantCell: "| ~~Dropped~~ |",
			notCell:  "**",
		},
		{
			name:     "cancelled today is struck through, never bolded",
			child:    task.Task{Title: "Dropped", State: task.StateCancelled, StartDate: today},
			wantCell: "~~Dropped~~",
			notCell:  "**",
		},
		{
			name:     "plain child has no markup",
			child:    task.Task{Title: "Plain", State: task.StateTodo},
			wantCell: "| Plain |",
			notCell:  "~~",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := task.Task{Title: "P", State: task.StateTodo, Children: []task.Task{tt.child}}
			got := Table(parent, testConfig(), today)
			assert.Contains(t, got, tt.wantCell)
			assert.NotContains(t, got, tt.notCell)
		})
	}
}

func TestTableEmptyCellsStayUnstyled(t *testing.T) {
	today := day(2024, time.June, 15)

	parent := task.Task{
		Title:    "P",
		State:    task.StateTodo,
		Children: []task.Task{{Title: "Dropped", State: task.StateCancelled}},
	}

	got := Table(parent, testConfig(), today)
	// Date cells are empty for this child; empty cells never get markup.
	assert.NotContains(t, got, "~~~~")
}

func TestReport(t *testing.T) {
	today := day(2024, time.June, 15)

	tasks := []task.Task{
		{Title: "A", State: task.StateTodo},
		{Title: "B", State: task.StateDone},
	}

	got := Report(tasks, testConfig(), today)

	assert.True(t, strings.HasPrefix(got, "# Today\n\n"))
	assert.True(t, strings.HasSuffix(got, "\n\ndone."))
	assert.Contains(t, got, "\n\n-----\n\n")

	// Header, two blocks with one separator, footer.
	assert.Equal(t, 1, strings.Count(got, "-----"))
}

func TestTagBlocks(t *testing.T) {
	tax := task.Taxonomy{
		Parents:       map[string]task.Class{"work": {ID: 0, Name: "Work"}},
		Children:      map[string]task.Class{"meeting": {ID: 0, Name: "Meeting"}},
		ParentDefault: task.Class{ID: 99, Name: "Other"},
		ChildDefault:  task.Class{ID: 99, Name: "Misc"},
	}

	tasks := []task.Task{
		{ParentTag: "work", ChildTag: "meeting", Content: "standup\nretro"},
		{ParentTag: "", ChildTag: "", Content: "untagged note"},
	}

	got := TagBlocks(tasks, tax)

	require.Contains(t, got, "## Work / Meeting\n\nstandup\nretro")
	assert.Contains(t, got, "## Other / Misc\n\nuntagged note")
	assert.Equal(t, 1, strings.Count(got, "-----"))
}

func TestStateLabel(t *testing.T) {
	states := testConfig().States

	assert.Equal(t, "TODO", StateLabel(states, task.StateTodo))
	assert.Equal(t, "WIP", StateLabel(states, task.StateOngoing))
	assert.Equal(t, "DONE", StateLabel(states, task.StateDone))
	assert.Equal(t, "DROP", StateLabel(states, task.StateCancelled))
}
