package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-03-05 08:10:00,2017-03-05 08:20:00,600,A,B,Subscriber,Male,1990.0
2,2017-03-05 08:30:00,2017-03-05 08:35:00,300,A,B,Subscriber,Female,1985.0
3,2017-03-06 17:00:00,2017-03-06 17:30:00,1800,C,A,Customer,,
4,2017-01-02 09:00:00,2017-01-02 09:10:00,400,B,C,Subscriber,Male,1990.0
5,2017-06-23 17:15:00,2017-06-23 17:20:00,200,C,A,Customer,Female,1972.0
6,2017-03-10 08:45:00,2017-03-10 08:47:00,100,A,C,Subscriber,Male,1990.0
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-03-05 08:10:00,2017-03-05 08:20:00,600.5,X,Y,Subscriber
1,2017-04-05 12:00:00,2017-04-05 12:20:00,1200,Y,X,Customer
`

func decode(t *testing.T, data string) *Table {
	t.Helper()
	table, err := Decode(strings.NewReader(data))
	require.NoError(t, err)
	return table
}

func TestDecodeDerivesCalendarFields(t *testing.T) {
	table := decode(t, chicagoCSV)
	require.Equal(t, 6, table.Len())

	first := table.Rows()[0]
	assert.Equal(t, 3, first.Month)
	assert.Equal(t, "Sunday", first.DayOfWeek)
	assert.Equal(t, 8, first.Hour)
	assert.Equal(t, 0, first.Index)
	require.NotNil(t, first.TripDuration)
	assert.Equal(t, 600.0, *first.TripDuration)
	require.NotNil(t, first.BirthYear)
	assert.Equal(t, 1990.0, *first.BirthYear)

	third := table.Rows()[2]
	assert.Equal(t, "Monday", third.DayOfWeek)
	assert.Equal(t, "", third.Gender)
	assert.Nil(t, third.BirthYear)

	assert.Equal(t, "Friday", table.Rows()[4].DayOfWeek)
	assert.Equal(t, 6, table.Rows()[4].Month)
}

func TestDecodeRejectsBadTimestamp(t *testing.T) {
	_, err := Decode(strings.NewReader(",Start Time,Trip Duration\n0,yesterday,10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestDecodeRequiresStartTime(t *testing.T) {
	_, err := Decode(strings.NewReader("Trip Duration\n10\n"))
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, models.ColStartTime, mce.Column)
}

func TestMissingDemographicColumns(t *testing.T) {
	table := decode(t, washingtonCSV)
	assert.False(t, table.HasColumn(models.ColGender))

	_, err := table.Strings(models.ColGender)
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, models.ColGender, mce.Column)

	_, err = table.Floats(models.ColBirthYear)
	require.True(t, errors.As(err, &mce))

	types, err := table.Strings(models.ColUserType)
	require.NoError(t, err)
	assert.Equal(t, []string{"Subscriber", "Customer"}, types)
}

func TestFloatsSkipMissingBirthYears(t *testing.T) {
	table := decode(t, chicagoCSV)
	years, err := table.Floats(models.ColBirthYear)
	require.NoError(t, err)
	assert.Len(t, years, 5)
}

func TestFilterByMonth(t *testing.T) {
	table := decode(t, chicagoCSV)

	march, err := Filter(table, "march", All)
	require.NoError(t, err)
	require.Equal(t, 4, march.Len())
	for _, r := range march.Rows() {
		assert.Equal(t, 3, r.Month)
	}

	assert.Equal(t, 6, table.Len(), "source table must be untouched")
}

func TestFilterByDay(t *testing.T) {
	table := decode(t, chicagoCSV)

	monday, err := Filter(table, All, "monday")
	require.NoError(t, err)
	require.Equal(t, 2, monday.Len())
	for _, r := range monday.Rows() {
		assert.Equal(t, "Monday", r.DayOfWeek)
	}
}

func TestFilterAllKeepsEveryRow(t *testing.T) {
	table := decode(t, chicagoCSV)

	all, err := Filter(table, All, All)
	require.NoError(t, err)
	assert.Equal(t, table.Rows(), all.Rows())
}

func TestFilterCommutes(t *testing.T) {
	table := decode(t, chicagoCSV)

	both, err := Filter(table, "march", "monday")
	require.NoError(t, err)

	byDay, err := Filter(table, All, "monday")
	require.NoError(t, err)
	dayThenMonth, err := Filter(byDay, "march", All)
	require.NoError(t, err)

	assert.Equal(t, both.Rows(), dayThenMonth.Rows())
	require.Equal(t, 1, both.Len())
	assert.Equal(t, 1800.0, *both.Rows()[0].TripDuration)
}

func TestFilterKeepsSourceIndex(t *testing.T) {
	table := decode(t, chicagoCSV)

	march, err := Filter(table, "march", All)
	require.NoError(t, err)

	var got []int
	for _, r := range march.Rows() {
		got = append(got, r.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 5}, got)
}

func TestDecodeSkipsMissingDuration(t *testing.T) {
	table := decode(t, `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-03-05 08:10:00,2017-03-05 08:20:00,,X,Y,Subscriber
1,2017-03-06 12:00:00,2017-03-06 12:20:00,1200,Y,X,Customer
`)
	require.Equal(t, 2, table.Len())
	assert.Nil(t, table.Rows()[0].TripDuration)

	durations, err := table.Floats(models.ColTripDuration)
	require.NoError(t, err)
	assert.Equal(t, []float64{1200}, durations)
}

func TestFilterUnknownSelector(t *testing.T) {
	table := decode(t, chicagoCSV)

	_, err := Filter(table, "july", All)
	assert.Error(t, err)
	_, err = Filter(table, All, "someday")
	assert.Error(t, err)
}

func TestMonthOrdinal(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"january", 1},
		{"march", 3},
		{"june", 6},
	}
	for _, tt := range tests {
		got, err := MonthOrdinal(tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.month)
	}
}

func TestSliceClamps(t *testing.T) {
	table := decode(t, chicagoCSV)

	assert.Equal(t, 2, table.Slice(4, 9).Len())
	assert.Equal(t, 0, table.Slice(10, 15).Len())
	assert.Equal(t, 6, table.Slice(-1, 6).Len())
}

func TestLoaderReadsRegisteredFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(chicagoCSV), 0644))

	loader := NewLoader(config.NewRegistry(dir), utils.NewLoggerTo(os.Stderr, utils.LevelError))
	table, err := loader.Load("chicago")
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader(config.NewRegistry(t.TempDir()), utils.NewLoggerTo(os.Stderr, utils.LevelError))

	_, err := loader.Load("washington")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "washington", le.City)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoaderUnknownCity(t *testing.T) {
	loader := NewLoader(config.NewRegistry(t.TempDir()), utils.NewLoggerTo(os.Stderr, utils.LevelError))

	_, err := loader.Load("boston")
	assert.ErrorIs(t, err, config.ErrUnknownCity)
}
