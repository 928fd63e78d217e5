package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare-explorer/dataset"
	"bikeshare-explorer/models"
	"bikeshare-explorer/prompt"
	"bikeshare-explorer/services"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

// Loader loads the full dataset for a city.
type Loader interface {
	Load(city string) (*dataset.Table, error)
}

// Session runs the interactive explore loop.
type Session struct {
	Prompter *prompt.Prompter
	Loader   Loader
	Reports  *services.ReportService
	Archive  storage.SummaryWriter
	Logger   *utils.Logger
	Out      io.Writer
	Cities   []string
	PageSize int
}

// Run repeats iterations until the user declines to restart or input ends.
// Load and column errors end the run and are returned.
func (s *Session) Run() error {
	for {
		restart, err := s.iterate()
		if errors.Is(err, io.EOF) {
			s.Logger.Debug("[session] Input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) iterate() (bool, error) {
	sel, err := s.Filters()
	if err != nil {
		return false, err
	}

	full, err := s.Loader.Load(sel.City)
	if err != nil {
		return false, err
	}

	table, err := dataset.Filter(full, sel.Month, sel.Day)
	if err != nil {
		return false, err
	}
	s.Logger.Info("[session] %d of %d trips match month=%s day=%s",
		table.Len(), full.Len(), sel.Month, sel.Day)

	summary, err := s.Report(table, sel)
	if err != nil {
		return false, err
	}

	if err := s.Prompter.Browse(prompt.NewPager(table, s.PageSize)); err != nil {
		return false, err
	}

	s.archive(summary)

	return s.Prompter.Confirm("\nWould you like to restart? Enter yes or no.")
}

// Filters asks for the city, month and day.
func (s *Session) Filters() (dataset.Selection, error) {
	fmt.Fprintln(s.Out, "Hello! Let's explore some US bikeshare data!")

	cityList := "[" + strings.Join(titles(s.Cities), ", ") + "]"
	monthList := "[" + strings.Join(titles(dataset.Months), ", ") + "]"
	dayList := "[" + strings.Join(titles(dataset.Days), ", ") + "]"

	city, err := s.Prompter.Choose(prompt.Choice{
		Prompt:   "Which city would you like to explore " + cityList + ":",
		Retry:    "Please enter only " + cityList + ":",
		Accepted: s.Cities,
	})
	if err != nil {
		return dataset.Selection{}, err
	}

	month, err := s.Prompter.Choose(prompt.Choice{
		Prompt:   "\nIf you want to filter by month enter the month " + monthList + " or enter [all] for no filter:",
		Retry:    "Please enter only " + monthList + " or [all] for no filter:",
		Accepted: dataset.Months,
		AllowAll: true,
	})
	if err != nil {
		return dataset.Selection{}, err
	}

	day, err := s.Prompter.Choose(prompt.Choice{
		Prompt:   "If you want to filter by day enter the day " + dayList + " or enter [all] for no filter:",
		Retry:    "Please enter only " + dayList + " or [all] for no filter:",
		Accepted: dataset.Days,
		AllowAll: true,
	})
	if err != nil {
		return dataset.Selection{}, err
	}

	fmt.Fprintln(s.Out, services.Separator)
	return dataset.Selection{City: city, Month: month, Day: day}, nil
}

// Report runs the time, station, duration and user reports in that order
// and returns the summary to archive.
func (s *Session) Report(t *dataset.Table, sel dataset.Selection) (models.SessionSummary, error) {
	summary := models.SessionSummary{
		City:      sel.City,
		Month:     sel.Month,
		Day:       sel.Day,
		Rows:      t.Len(),
		CreatedAt: time.Now().UTC(),
	}

	tr, err := s.Reports.TimeStats(t, sel)
	if err != nil {
		return summary, err
	}
	s.Reports.PrintTime(tr)
	summary.PopularHour = tr.PopularHour

	sr, err := s.Reports.StationStats(t)
	if err != nil {
		return summary, err
	}
	s.Reports.PrintStation(sr)
	summary.PopularStart = sr.PopularStart
	summary.PopularEnd = sr.PopularEnd

	dr, err := s.Reports.DurationStats(t)
	if err != nil {
		return summary, err
	}
	s.Reports.PrintDuration(dr)
	summary.TotalSeconds = dr.Total
	summary.MeanSeconds = dr.Mean

	ur, err := s.Reports.UserStats(t, sel.City)
	if err != nil {
		return summary, err
	}
	s.Reports.PrintUser(ur)

	return summary, nil
}

func (s *Session) archive(summary models.SessionSummary) {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.Write(summary); err != nil {
		s.Logger.Warn("[session] Could not archive summary: %v", err)
	}
}

func titles(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		words := strings.Fields(n)
		for j, w := range words {
			words[j] = strings.ToUpper(w[:1]) + w[1:]
		}
		out[i] = strings.Join(words, " ")
	}
	return out
}
