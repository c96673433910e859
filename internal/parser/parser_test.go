package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/errors"
	"fittrack/internal/timeseries"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

// =============================================================================
// Date Tests
// =============================================================================

func TestParseDateISO(t *testing.T) {
	d, err := ParseDate("2024-06-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateToday(t *testing.T) {
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	d, err := ParseDate("", testNow)
	require.NoError(t, err)
	assert.Equal(t, want, d)

	d, err = ParseDate("today", testNow)
	require.NoError(t, err)
	assert.Equal(t, want, d)

	d, err = ParseDate("TODAY", testNow)
	require.NoError(t, err)
	assert.Equal(t, want, d)
}

func TestParseDateNaturalLanguage(t *testing.T) {
	d, err := ParseDate("yesterday", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateTruncatesToMidnight(t *testing.T) {
	d, err := ParseDate("yesterday", testNow)
	require.NoError(t, err)
	assert.Zero(t, d.Hour())
	assert.Zero(t, d.Minute())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("not a date at all xyz", testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

// =============================================================================
// Window and Metric Tests
// =============================================================================

func TestParseWindowAliases(t *testing.T) {
	cases := map[string]timeseries.Window{
		"7d":           timeseries.Last7Days,
		"week":         timeseries.Last7Days,
		"30d":          timeseries.Last30Days,
		"month":        timeseries.Last30Days,
		"Last 30 Days": timeseries.Last30Days,
		"quarter":      timeseries.Last90Days,
		"1y":           timeseries.LastYear,
		"all":          timeseries.AllTime,
		" all time ":   timeseries.AllTime,
	}
	for input, want := range cases {
		w, err := ParseWindow(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, w, "input %q", input)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	_, err := ParseWindow("fortnight")
	assert.ErrorIs(t, err, errors.ErrInvalidWindow)
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("Weight")
	require.NoError(t, err)
	assert.Equal(t, timeseries.MetricWeight, m)

	_, err = ParseMetric("steps")
	assert.ErrorIs(t, err, errors.ErrInvalidMetric)
}

// =============================================================================
// Exercise Shorthand Tests
// =============================================================================

func TestParseExercise(t *testing.T) {
	e, err := ParseExercise("Bench Press:100x5,105x5,110x3")
	require.NoError(t, err)

	assert.Equal(t, "Bench Press", e.Name)
	require.Len(t, e.Sets, 3)
	assert.Equal(t, 100.0, e.Sets[0].Weight)
	assert.Equal(t, 5, e.Sets[0].Reps)
	assert.Equal(t, 110.0, e.Sets[2].Weight)
	assert.Equal(t, 3, e.Sets[2].Reps)
}

func TestParseExerciseFractionalWeight(t *testing.T) {
	e, err := ParseExercise("Curl:22.5x12")
	require.NoError(t, err)
	assert.Equal(t, 22.5, e.Sets[0].Weight)
}

func TestParseExerciseUppercaseSeparator(t *testing.T) {
	e, err := ParseExercise("Squat:185X5")
	require.NoError(t, err)
	assert.Equal(t, 185.0, e.Sets[0].Weight)
	assert.Equal(t, 5, e.Sets[0].Reps)
}

func TestParseExerciseInvalid(t *testing.T) {
	cases := []string{
		"no colon here",
		":100x5",
		"Bench Press:",
		"Bench Press:100",
		"Bench Press:abcx5",
		"Bench Press:100x0",
		"Bench Press:100x-3",
		"Bench Press:-5x5",
	}
	for _, input := range cases {
		_, err := ParseExercise(input)
		assert.Error(t, err, "input %q", input)
	}
}
