package task

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// InvalidStateError is returned when the character between the checklist
// brackets is not one of the recognized state markers.
type InvalidStateError struct {
	Char string
	Line string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state character %q in line %q", e.Char, e.Line)
}

var (
	// Start and done markers: a glyph, whitespace, then MM-DD with an
	// optional year prefix. The trailing capture group holds the
	// month/day pair fed to ResolveDate.
	startRe = regexp.MustCompile(`🛫\s+((\d{4}-)?(\d{2}-\d{2}))`)
	doneRe  = regexp.MustCompile(`✅\s+((\d{4}-)?(\d{2}-\d{2}))`)

	// statePrefixRe captures the state character and anchors the
	// checklist prefix (indentation included) for stripping.
	statePrefixRe = regexp.MustCompile(`^\t*- \[(.)\] `)

	// tagRe splits a hashtag token into parent and child components.
	tagRe = regexp.MustCompile(`#([^\s/]*)/?(\S*)`)

	// hashRe matches any hashtag token for title stripping.
	hashRe = regexp.MustCompile(`#\S*`)
)

// ParseLine decomposes one checklist line into a Task and reports whether
// the line is a parent (indentation depth zero). The function is pure:
// today only drives year inference for the embedded partial dates.
//
// All marker substrings (checklist prefix, date markers, hashtag token)
// are stripped from the resulting Title; the raw tag components are kept
// on ParentTag/ChildTag for the tag-grouping pipeline.
func ParseLine(line string, today time.Time) (Task, bool, error) {
	isParent := Depth(line) == 0

	startDate, err := matchDate(startRe, line, today)
	if err != nil {
		return Task{}, false, err
	}
	doneDate, err := matchDate(doneRe, line, today)
	if err != nil {
		return Task{}, false, err
	}

	m := statePrefixRe.FindStringSubmatch(line)
	if m == nil {
		return Task{}, false, fmt.Errorf("not a checklist line: %q", line)
	}

	var state State
	switch m[1] {
	case " ":
		state = StateTodo
	case "/":
		state = StateOngoing
	case "x":
		state = StateDone
	case "-":
		state = StateCancelled
	default:
		return Task{}, false, &InvalidStateError{Char: m[1], Line: line}
	}

	parentTag, childTag := parseTag(line)

	title := statePrefixRe.ReplaceAllString(line, "")
	title = startRe.ReplaceAllString(title, "")
	title = doneRe.ReplaceAllString(title, "")
	title = hashRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	return Task{
		Title:     title,
		State:     state,
		StartDate: startDate,
		DoneDate:  doneDate,
		ParentTag: parentTag,
		ChildTag:  childTag,
	}, isParent, nil
}

func matchDate(re *regexp.Regexp, line string, today time.Time) (time.Time, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, nil
	}
	return ResolveDate(m[3], today)
}

// parseTag extracts the first hashtag token's parent/child components.
// Both sides default to the empty string when absent.
func parseTag(line string) (parent, child string) {
	m := tagRe.FindStringSubmatch(line)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
