package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jszwec/csvutil"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
}

// Loader resolves cities through the registry and reads their trip files.
type Loader struct {
	registry *config.Registry
	logger   *utils.Logger
}

// NewLoader creates a Loader over registry.
func NewLoader(registry *config.Registry, logger *utils.Logger) *Loader {
	return &Loader{registry: registry, logger: logger}
}

// Load reads the dataset for city. An unknown city yields an error wrapping
// config.ErrUnknownCity; file problems yield a *LoadError.
func (l *Loader) Load(city string) (*Table, error) {
	path, err := l.registry.Lookup(city)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("[dataset] Opening %s for %s", path, city)

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{City: city, Path: path, Err: err}
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, &LoadError{City: city, Path: path, Err: err}
	}

	l.logger.Info("[dataset] Loaded %d trips for %s", table.Len(), city)
	return table, nil
}

// Decode parses trip CSV data with a header row and derives the calendar
// columns from Start Time.
func Decode(r io.Reader) (*Table, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("create CSV decoder: %w", err)
	}

	header := dec.Header()
	if !contains(header, models.ColStartTime) {
		return nil, &MissingColumnError{Column: models.ColStartTime}
	}

	var trips []models.Trip
	if err := dec.Decode(&trips); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode trips: %w", err)
	}

	for i := range trips {
		ts, err := parseStartTime(trips[i].RawStartTime)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		trips[i].Index = i
		derive(&trips[i], ts)
	}

	return NewTable(trips, header), nil
}

func derive(t *models.Trip, ts time.Time) {
	t.Month = int(ts.Month())
	t.DayOfWeek = ts.Weekday().String()
	t.Hour = ts.Hour()
}

func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable %s %q", models.ColStartTime, raw)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
