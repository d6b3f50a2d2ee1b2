package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidDateError is returned when a date fragment names a month/day
// combination that is not a real calendar date.
type InvalidDateError struct {
	Fragment string
	Month    int
	Day      int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: month %d day %d does not exist", e.Fragment, e.Month, e.Day)
}

// ResolveDate turns a partial date fragment ("MM-DD" or "YYYY-MM-DD")
// into a concrete date, inferring the year as the closest occurrence not
// after today. An empty fragment resolves to the zero time.
//
// A year component in the fragment is ignored; inference always runs from
// today. Known quirk inherited from the note format's informal grammar,
// kept until there is a reason to change it.
func ResolveDate(fragment string, today time.Time) (time.Time, error) {
	if fragment == "" {
		return time.Time{}, nil
	}

	parts := strings.Split(fragment, "-")
	if len(parts) < 2 {
		return time.Time{}, &InvalidDateError{Fragment: fragment}
	}

	// Only the trailing month/day pair is used, even for YYYY-MM-DD.
	month, merr := strconv.Atoi(parts[len(parts)-2])
	day, derr := strconv.Atoi(parts[len(parts)-1])
	if merr != nil || derr != nil {
		return time.Time{}, &InvalidDateError{Fragment: fragment, Month: month, Day: day}
	}

	year := today.Year()
	candidate, ok := makeDate(year, month, day)
	if !ok {
		return time.Time{}, &InvalidDateError{Fragment: fragment, Month: month, Day: day}
	}

	if !candidate.After(dateOnly(today)) {
		return candidate, nil
	}

	// Future this year: the marker refers to last year's occurrence.
	prev, ok := makeDate(year-1, month, day)
	if !ok {
		return time.Time{}, &InvalidDateError{Fragment: fragment, Month: month, Day: day}
	}
	return prev, nil
}

// makeDate builds a date and reports whether month/day named a real
// calendar date for that year (time.Date silently normalizes overflow).
func makeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(d.Month()) != month || d.Day() != day || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar date.
// Zero times never match anything.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
