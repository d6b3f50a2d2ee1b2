// Package task implements the checklist parsing core: turning daily-note
// checklist lines into typed tasks, assembling the parent/child hierarchy,
// and grouping tasks by tag classification.
package task

import "time"

// State represents the lifecycle state of a checklist item.
type State int

const (
	StateTodo State = iota
	StateOngoing
	StateDone
	StateCancelled
)

// String returns the state's config key, used for logging and errors.
func (s State) String() string {
	switch s {
	case StateTodo:
		return "todo"
	case StateOngoing:
		return "ongoing"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Task is one checklist entry. A task is either hierarchical (Title,
// State, dates, Children populated by BuildTree) or tag-grouped
// (ParentTag, ChildTag, Content populated by BuildBlocks); the two modes
// never mix on one record.
type Task struct {
	Title     string
	State     State
	StartDate time.Time // zero when the line carries no start marker
	DoneDate  time.Time // zero when the line carries no done marker

	// Hierarchical mode only. Ordering follows the note's line order.
	Children []Task

	// Tag-grouping mode only. Tags hold the raw token text; empty string
	// when the line has no tag, never a sentinel.
	ParentTag string
	ChildTag  string
	Content   string
}
