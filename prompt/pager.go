package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare-explorer/dataset"
	"bikeshare-explorer/models"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 5

// Pager walks a table in fixed-size pages.
type Pager struct {
	table  *dataset.Table
	size   int
	cursor int
}

// NewPager creates a Pager at row 0. A non-positive size means DefaultPageSize.
func NewPager(t *dataset.Table, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{table: t, size: size}
}

// Cursor returns the index of the first row of the next page.
func (p *Pager) Cursor() int { return p.cursor }

// Next returns the next page and advances the cursor. Past the end the
// page is empty.
func (p *Pager) Next() (page *dataset.Table, offset int) {
	offset = p.cursor
	page = p.table.Slice(p.cursor, p.cursor+p.size)
	p.cursor += p.size
	return page, offset
}

// Browse prints the first page, then one more page per "yes" answer.
// Any other answer, or end of input, stops.
func (p *Prompter) Browse(pager *Pager) error {
	for {
		page, _ := pager.Next()
		if err := WriteRows(p.out, page); err != nil {
			return err
		}

		more, err := p.Confirm("\nWould you like to print more rows? Enter yes or no.")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// WriteRows prints page as an aligned table, each row labelled with its
// index in the source file.
func WriteRows(w io.Writer, page *dataset.Table) error {
	cols := rowColumns(page)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(cols, "\t"))

	for _, r := range page.Rows() {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = cell(&r, c)
		}
		fmt.Fprintf(tw, "%d\t%s\n", r.Index, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

var printable = []string{
	models.ColStartTime,
	models.ColEndTime,
	models.ColTripDuration,
	models.ColStartStation,
	models.ColEndStation,
	models.ColUserType,
	models.ColGender,
	models.ColBirthYear,
	models.ColMonth,
	models.ColDayOfWeek,
	models.ColHour,
}

func rowColumns(t *dataset.Table) []string {
	cols := make([]string, 0, len(printable))
	for _, c := range printable {
		if t.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

func cell(r *models.Trip, col string) string {
	switch col {
	case models.ColStartTime:
		return r.RawStartTime
	case models.ColEndTime:
		return r.RawEndTime
	case models.ColTripDuration:
		if r.TripDuration == nil {
			return "NaN"
		}
		return strconv.FormatFloat(*r.TripDuration, 'f', -1, 64)
	case models.ColStartStation:
		return r.StartStation
	case models.ColEndStation:
		return r.EndStation
	case models.ColUserType:
		return r.UserType
	case models.ColGender:
		if r.Gender == "" {
			return "NaN"
		}
		return r.Gender
	case models.ColBirthYear:
		if r.BirthYear == nil {
			return "NaN"
		}
		return strconv.FormatFloat(*r.BirthYear, 'f', -1, 64)
	case models.ColMonth:
		return strconv.Itoa(r.Month)
	case models.ColDayOfWeek:
		return r.DayOfWeek
	case models.ColHour:
		return strconv.Itoa(r.Hour)
	}
	return ""
}
