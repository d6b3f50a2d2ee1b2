package task

import (
	"fmt"
	"time"
)

// MalformedHierarchyError is returned when an indented line appears
// before any parent line has been seen.
type MalformedHierarchyError struct {
	Line string
}

func (e *MalformedHierarchyError) Error() string {
	return fmt.Sprintf("child line before any parent task: %q", e.Line)
}

// BuildTree assembles parent tasks with structured children from
// checklist lines, consumed strictly in order. A depth-zero line opens a
// new parent; every indented line is appended to the most recent parent's
// Children.
func BuildTree(lines []string, today time.Time) ([]Task, error) {
	var tasks []Task
	for _, line := range lines {
		t, isParent, err := ParseLine(line, today)
		if err != nil {
			return nil, err
		}
		if isParent {
			tasks = append(tasks, t)
			continue
		}
		if len(tasks) == 0 {
			return nil, &MalformedHierarchyError{Line: line}
		}
		cur := &tasks[len(tasks)-1]
		cur.Children = append(cur.Children, t)
	}
	return tasks, nil
}

// BuildBlocks assembles tag-grouped tasks: each depth-zero line opens a
// task whose tag pair comes from that line alone, and the stripped text
// of the line plus any indented lines that follow becomes the task's
// multi-line Content block.
func BuildBlocks(lines []string, today time.Time) ([]Task, error) {
	var tasks []Task
	for _, line := range lines {
		t, isParent, err := ParseLine(line, today)
		if err != nil {
			return nil, err
		}
		if isParent {
			tasks = append(tasks, Task{
				ParentTag: t.ParentTag,
				ChildTag:  t.ChildTag,
				Content:   t.Title,
			})
			continue
		}
		if len(tasks) == 0 {
			return nil, &MalformedHierarchyError{Line: line}
		}
		cur := &tasks[len(tasks)-1]
		cur.Content += "\n" + t.Title
	}
	return tasks, nil
}
