package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bikeshare-explorer/models"
)

var summaryHeader = []string{
	"created_at", "city", "month", "day", "rows",
	"total_seconds", "mean_seconds", "popular_hour", "popular_start", "popular_end",
}

// CSVWriter appends session summaries to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter opens (or creates) the CSV file at path for appending. The
// header row is written only when the file is new or empty. Intermediate
// directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv: open file %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: stat file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(summaryHeader); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		w.Flush()
	}

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one summary row.
func (c *CSVWriter) Write(s models.SessionSummary) error {
	hour := ""
	if s.PopularHour != nil {
		hour = strconv.Itoa(*s.PopularHour)
	}

	row := []string{
		s.CreatedAt.Format(time.RFC3339),
		s.City,
		s.Month,
		s.Day,
		strconv.Itoa(s.Rows),
		strconv.FormatFloat(s.TotalSeconds, 'f', -1, 64),
		strconv.FormatFloat(s.MeanSeconds, 'f', -1, 64),
		hour,
		s.PopularStart,
		s.PopularEnd,
	}
	if err := c.writer.Write(row); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
