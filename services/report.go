package services

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"bikeshare-explorer/config"
	"bikeshare-explorer/dataset"
	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

const notAvailable = "n/a"

// ReportService computes and prints the four trip reports.
type ReportService struct {
	logger *utils.Logger
	out    io.Writer
}

// NewReportService creates a ReportService printing to out.
func NewReportService(logger *utils.Logger, out io.Writer) *ReportService {
	return &ReportService{logger: logger, out: out}
}

// TimeStats finds the most frequent month, day and hour. Month and day are
// skipped when the selection already pins them.
func (s *ReportService) TimeStats(t *dataset.Table, sel dataset.Selection) (*models.TimeReport, error) {
	start := time.Now()
	r := &models.TimeReport{}

	if sel.Month == dataset.All {
		months, err := t.Ints(models.ColMonth)
		if err != nil {
			return nil, err
		}
		if m, ok := Mode(months); ok {
			r.PopularMonth = time.Month(m).String()
		}
	}

	if sel.Day == dataset.All {
		days, err := t.Strings(models.ColDayOfWeek)
		if err != nil {
			return nil, err
		}
		if d, ok := Mode(nonEmpty(days)); ok {
			r.PopularDay = d
		}
	}

	hours, err := t.Ints(models.ColHour)
	if err != nil {
		return nil, err
	}
	if h, ok := Mode(hours); ok {
		r.PopularHour = &h
	}

	r.Elapsed = time.Since(start)
	s.logger.Debug("[report] Time stats over %d trips in %v", t.Len(), r.Elapsed)
	return r, nil
}

// StationStats finds the most used start and end stations and trip.
func (s *ReportService) StationStats(t *dataset.Table) (*models.StationReport, error) {
	start := time.Now()
	r := &models.StationReport{}

	starts, err := t.Strings(models.ColStartStation)
	if err != nil {
		return nil, err
	}
	ends, err := t.Strings(models.ColEndStation)
	if err != nil {
		return nil, err
	}

	r.PopularStart, _ = Mode(nonEmpty(starts))
	r.PopularEnd, _ = Mode(nonEmpty(ends))
	r.PopularTrip = TopPair(starts, ends)

	r.Elapsed = time.Since(start)
	s.logger.Debug("[report] Station stats over %d trips in %v", t.Len(), r.Elapsed)
	return r, nil
}

// DurationStats totals and averages trip duration.
func (s *ReportService) DurationStats(t *dataset.Table) (*models.DurationReport, error) {
	start := time.Now()

	durations, err := t.Floats(models.ColTripDuration)
	if err != nil {
		return nil, err
	}

	r := &models.DurationReport{
		Total:   Sum(durations),
		Mean:    Mean(durations),
		Elapsed: time.Since(start),
	}
	s.logger.Debug("[report] Duration stats over %d trips in %v", t.Len(), r.Elapsed)
	return r, nil
}

// UserStats counts user types and, except for washington, genders and
// birth years. Washington's data has no demographic columns.
func (s *ReportService) UserStats(t *dataset.Table, city string) (*models.UserReport, error) {
	start := time.Now()
	r := &models.UserReport{}

	types, err := t.Strings(models.ColUserType)
	if err != nil {
		return nil, err
	}
	r.UserTypes = ValueCounts(types)

	if city != config.Washington {
		r.HasDemographics = true

		genders, err := t.Strings(models.ColGender)
		if err != nil {
			return nil, err
		}
		r.Genders = ValueCounts(genders)

		years, err := t.Floats(models.ColBirthYear)
		if err != nil {
			return nil, err
		}
		if lo, hi, ok := MinMax(years); ok {
			r.EarliestBirth = intPtr(lo)
			r.LatestBirth = intPtr(hi)
		}
		if m, ok := Mode(years); ok {
			r.CommonBirth = intPtr(m)
		}
	}

	r.Elapsed = time.Since(start)
	s.logger.Debug("[report] User stats over %d trips in %v (demographics: %t)",
		t.Len(), r.Elapsed, r.HasDemographics)
	return r, nil
}

func (s *ReportService) PrintTime(r *models.TimeReport) {
	fmt.Fprintf(s.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if r.PopularMonth != "" {
		fmt.Fprintf(s.out, "Most Popular Month: %s\n", r.PopularMonth)
	}
	if r.PopularDay != "" {
		fmt.Fprintf(s.out, "Most Popular Day: %s\n", r.PopularDay)
	}
	fmt.Fprintf(s.out, "Most Popular Hour: %s\n", intOrNA(r.PopularHour))
	s.footer(r.Elapsed)
}

func (s *ReportService) PrintStation(r *models.StationReport) {
	fmt.Fprintf(s.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	fmt.Fprintf(s.out, "Most Popular Start Station: %s\n", orNA(r.PopularStart))
	fmt.Fprintf(s.out, "Most Popular End Station: %s\n", orNA(r.PopularEnd))
	if r.PopularTrip != nil {
		fmt.Fprintf(s.out, "Most Popular Trip: %s -> %s (%d trips)\n",
			r.PopularTrip.Start, r.PopularTrip.End, r.PopularTrip.Count)
	} else {
		fmt.Fprintf(s.out, "Most Popular Trip: %s\n", notAvailable)
	}
	s.footer(r.Elapsed)
}

func (s *ReportService) PrintDuration(r *models.DurationReport) {
	fmt.Fprintf(s.out, "\nCalculating Trip Duration...\n\n")
	fmt.Fprintf(s.out, "Total Travel Time: %s seconds\n", formatFloat(r.Total))
	fmt.Fprintf(s.out, "Average Travel Time: %s seconds\n", formatFloat(r.Mean))
	s.footer(r.Elapsed)
}

func (s *ReportService) PrintUser(r *models.UserReport) {
	fmt.Fprintf(s.out, "\nCalculating User Stats...\n\n")
	fmt.Fprintf(s.out, "Counts of user types:\n")
	s.printCounts(r.UserTypes)

	if r.HasDemographics {
		fmt.Fprintf(s.out, "Counts of gender:\n")
		s.printCounts(r.Genders)
		fmt.Fprintf(s.out, "Earliest birth year: %s\n", intOrNA(r.EarliestBirth))
		fmt.Fprintf(s.out, "Most recent birth year: %s\n", intOrNA(r.LatestBirth))
		fmt.Fprintf(s.out, "Most common birth year: %s\n", intOrNA(r.CommonBirth))
	}
	s.footer(r.Elapsed)
}

func (s *ReportService) printCounts(counts []models.ValueCount) {
	if len(counts) == 0 {
		fmt.Fprintf(s.out, "  %s\n", notAvailable)
		return
	}
	for _, vc := range counts {
		fmt.Fprintf(s.out, "  %-20s %d\n", vc.Value, vc.Count)
	}
}

func (s *ReportService) footer(elapsed time.Duration) {
	fmt.Fprintf(s.out, "\nThis took %.6f seconds.\n", elapsed.Seconds())
	fmt.Fprintln(s.out, Separator)
}

// Separator closes every report block.
var Separator = strings.Repeat("-", 40)

func intPtr(f float64) *int {
	n := int(math.Round(f))
	return &n
}

func intOrNA(n *int) string {
	if n == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", *n)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// formatFloat prints f at full precision, whole numbers without a fraction.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
