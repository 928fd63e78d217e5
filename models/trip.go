package models

// Source column names. They are a fixed contract with the data files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Trip is one row of a city dataset. The derived fields are filled in by
// the loader and are never written back to the source file. Nil pointers
// are missing values.
type Trip struct {
	RawStartTime string   `csv:"Start Time"`
	RawEndTime   string   `csv:"End Time"`
	TripDuration *float64 `csv:"Trip Duration"`
	StartStation string   `csv:"Start Station"`
	EndStation   string   `csv:"End Station"`
	UserType     string   `csv:"User Type"`
	Gender       string   `csv:"Gender"`
	BirthYear    *float64 `csv:"Birth Year"`

	// Index is the row's position in the source file. Filtering keeps it.
	Index     int    `csv:"-"`
	Month     int    `csv:"-"`
	DayOfWeek string `csv:"-"`
	Hour      int    `csv:"-"`
}

// Derived column names, computed from Start Time at load.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
	ColHour      = "hour"
)
