package task

import (
	"regexp"
	"strings"
)

// checklistRe matches the checklist grammar: leading tab indentation,
// "- [", exactly one state character, "] ", then the entry text.
var checklistRe = regexp.MustCompile(`^\t*- \[.\] .*$`)

// FilterLines keeps only lines matching the checklist grammar whose
// indentation depth does not exceed maxDepth. Non-matching lines are
// dropped silently; the note holds plenty of prose that is not a task.
// A maxDepth of zero or less accepts any depth.
func FilterLines(lines []string, maxDepth int) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimRight(line, "\n")
		if !checklistRe.MatchString(line) {
			continue
		}
		if maxDepth > 0 && Depth(line) > maxDepth {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Depth counts leading tabs. Zero marks a parent task, anything greater
// a child; the exact count past one carries no meaning.
func Depth(line string) int {
	n := 0
	for _, r := range line {
		if r != '\t' {
			break
		}
		n++
	}
	return n
}
