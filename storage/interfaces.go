package storage

import (
	"errors"

	"bikeshare-explorer/models"
)

// SummaryWriter is the interface any session archive must satisfy.
type SummaryWriter interface {
	Write(summary models.SessionSummary) error
	Close() error
}

// MultiWriter fans a summary out to several writers.
type MultiWriter []SummaryWriter

// Write writes to every writer and joins their errors.
func (m MultiWriter) Write(summary models.SessionSummary) error {
	var errs []error
	for _, w := range m {
		if err := w.Write(summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every writer and joins their errors.
func (m MultiWriter) Close() error {
	var errs []error
	for _, w := range m {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
