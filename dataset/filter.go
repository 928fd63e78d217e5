package dataset

import (
	"fmt"
	"strings"

	"bikeshare-explorer/models"
)

// All is the wildcard selector that disables a filter.
const All = "all"

// Months lists the selectable months; a month's ordinal is its index + 1.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days lists the selectable days of the week.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Selection is one session's filter choice.
type Selection struct {
	City  string
	Month string
	Day   string
}

// MonthOrdinal returns the 1-based month number for a selectable month name.
func MonthOrdinal(month string) (int, error) {
	for i, m := range Months {
		if m == month {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("dataset: unknown month %q", month)
}

// Filter restricts t to the selected month and day. "all" passes every row.
// t is not modified.
func Filter(t *Table, month, day string) (*Table, error) {
	out := t
	if month != All {
		n, err := MonthOrdinal(month)
		if err != nil {
			return nil, err
		}
		out = out.Where(func(r *models.Trip) bool { return r.Month == n })
	}

	if day != All {
		name, err := dayName(day)
		if err != nil {
			return nil, err
		}
		out = out.Where(func(r *models.Trip) bool { return r.DayOfWeek == name })
	}

	if out == t {
		out = t.Slice(0, t.Len())
	}
	return out, nil
}

// dayName turns a lowercase selector into the title-case weekday name.
func dayName(day string) (string, error) {
	for _, d := range Days {
		if d == day {
			return strings.ToUpper(d[:1]) + d[1:], nil
		}
	}
	return "", fmt.Errorf("dataset: unknown day %q", day)
}
