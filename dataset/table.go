package dataset

import (
	"fmt"

	"bikeshare-explorer/models"
)

// Table is an immutable, ordered set of trips plus the source columns that
// were present in the file. Operations return new tables.
type Table struct {
	rows    []models.Trip
	columns map[string]struct{}
}

// NewTable builds a table from rows. Derived columns are always present;
// columns lists the source header.
func NewTable(rows []models.Trip, columns []string) *Table {
	t := &Table{
		rows:    rows,
		columns: make(map[string]struct{}, len(columns)+3),
	}
	for _, c := range columns {
		t.columns[c] = struct{}{}
	}
	t.columns[models.ColMonth] = struct{}{}
	t.columns[models.ColDayOfWeek] = struct{}{}
	t.columns[models.ColHour] = struct{}{}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows. Callers must not modify them.
func (t *Table) Rows() []models.Trip { return t.rows }

// HasColumn reports whether name is available.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Slice returns rows [start, end), clamped to the table bounds.
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > len(t.rows) {
		end = len(t.rows)
	}
	if start > end {
		start = end
	}
	return &Table{rows: t.rows[start:end:end], columns: t.columns}
}

// Where returns the rows for which keep returns true.
func (t *Table) Where(keep func(*models.Trip) bool) *Table {
	out := make([]models.Trip, 0, len(t.rows))
	for i := range t.rows {
		if keep(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return &Table{rows: out, columns: t.columns}
}

func (t *Table) require(name string) error {
	if !t.HasColumn(name) {
		return &MissingColumnError{Column: name}
	}
	return nil
}

// Strings returns a categorical column. Missing values are empty strings.
func (t *Table) Strings(name string) ([]string, error) {
	if err := t.require(name); err != nil {
		return nil, err
	}

	var get func(*models.Trip) string
	switch name {
	case models.ColStartStation:
		get = func(r *models.Trip) string { return r.StartStation }
	case models.ColEndStation:
		get = func(r *models.Trip) string { return r.EndStation }
	case models.ColUserType:
		get = func(r *models.Trip) string { return r.UserType }
	case models.ColGender:
		get = func(r *models.Trip) string { return r.Gender }
	case models.ColDayOfWeek:
		get = func(r *models.Trip) string { return r.DayOfWeek }
	default:
		return nil, fmt.Errorf("dataset: column %q is not categorical", name)
	}

	out := make([]string, len(t.rows))
	for i := range t.rows {
		out[i] = get(&t.rows[i])
	}
	return out, nil
}

// Floats returns a numeric column with missing values dropped.
func (t *Table) Floats(name string) ([]float64, error) {
	if err := t.require(name); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(t.rows))
	switch name {
	case models.ColTripDuration:
		for i := range t.rows {
			if t.rows[i].TripDuration != nil {
				out = append(out, *t.rows[i].TripDuration)
			}
		}
	case models.ColBirthYear:
		for i := range t.rows {
			if t.rows[i].BirthYear != nil {
				out = append(out, *t.rows[i].BirthYear)
			}
		}
	default:
		return nil, fmt.Errorf("dataset: column %q is not numeric", name)
	}
	return out, nil
}

// Ints returns a derived integer column.
func (t *Table) Ints(name string) ([]int, error) {
	if err := t.require(name); err != nil {
		return nil, err
	}

	out := make([]int, len(t.rows))
	switch name {
	case models.ColMonth:
		for i := range t.rows {
			out[i] = t.rows[i].Month
		}
	case models.ColHour:
		for i := range t.rows {
			out[i] = t.rows[i].Hour
		}
	default:
		return nil, fmt.Errorf("dataset: column %q is not an integer column", name)
	}
	return out, nil
}
