package dataset

import "fmt"

// LoadError reports a city file that is missing, unreadable or malformed.
type LoadError struct {
	City string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset: load %s (%s): %v", e.City, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MissingColumnError reports access to a column the source file does not have.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset: column %q not present in source", e.Column)
}
