package models

import "time"

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// StationPair is a (start, end) combination and how many trips used it.
type StationPair struct {
	Start string
	End   string
	Count int
}

// TimeReport holds the most frequent times of travel. Month and Day are
// left empty when the corresponding filter pinned them.
type TimeReport struct {
	PopularMonth string
	PopularDay   string
	PopularHour  *int
	Elapsed      time.Duration
}

// StationReport holds the most popular stations and trip.
type StationReport struct {
	PopularStart string
	PopularEnd   string
	PopularTrip  *StationPair
	Elapsed      time.Duration
}

// DurationReport holds total and mean trip duration in seconds.
type DurationReport struct {
	Total   float64
	Mean    float64
	Elapsed time.Duration
}

// UserReport holds user demographics. HasDemographics is false for cities
// whose data has no gender or birth year.
type UserReport struct {
	UserTypes       []ValueCount
	HasDemographics bool
	Genders         []ValueCount
	EarliestBirth   *int
	LatestBirth     *int
	CommonBirth     *int
	Elapsed         time.Duration
}

// SessionSummary is the record archived after each session iteration.
type SessionSummary struct {
	City         string
	Month        string
	Day          string
	Rows         int
	TotalSeconds float64
	MeanSeconds  float64
	PopularHour  *int
	PopularStart string
	PopularEnd   string
	CreatedAt    time.Time
}
