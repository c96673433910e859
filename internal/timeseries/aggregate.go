// Package timeseries turns raw workout and weight records into ordered
// (label, value) points ready for charting.
package timeseries

import (
	"sort"
	"time"

	"fittrack/internal/model"
)

// Metric selects the reduction applied to the records.
type Metric string

const (
	// MetricWeight passes body-weight entries through, sorted by date.
	MetricWeight Metric = "weight"
	// MetricWorkouts counts workouts per calendar date.
	MetricWorkouts Metric = "workouts"
	// MetricDuration sums workout duration per date, in hours.
	MetricDuration Metric = "duration"
	// MetricCalories sums calories burned per date.
	MetricCalories Metric = "calories"
)

// Label returns the y-axis label for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricWeight:
		return "Weight (lbs)"
	case MetricWorkouts:
		return "Workout Count"
	case MetricDuration:
		return "Duration (hours)"
	case MetricCalories:
		return "Calories Burned"
	}
	return string(m)
}

// Window is a relative time range ending now.
type Window string

const (
	Last7Days  Window = "7d"
	Last30Days Window = "30d"
	Last90Days Window = "90d"
	LastYear   Window = "1y"
	AllTime    Window = "all"
)

// Start returns the inclusive lower bound of the window, or false for
// AllTime which applies no filter.
func (w Window) Start(now time.Time) (time.Time, bool) {
	switch w {
	case Last7Days:
		return now.AddDate(0, 0, -7), true
	case Last30Days:
		return now.AddDate(0, 0, -30), true
	case Last90Days:
		return now.AddDate(0, 0, -90), true
	case LastYear:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// Point is one aggregated chart point: a display label and its value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Input bundles the record collections a metric may draw from.
type Input struct {
	Workouts []model.Workout
	Weights  []model.WeightEntry
}

// Aggregate filters records to the window and reduces them per the
// metric. The result is ordered ascending by date and is empty (never
// nil-vs-error) when nothing falls inside the window.
func Aggregate(in Input, metric Metric, window Window, now time.Time) []Point {
	switch metric {
	case MetricWeight:
		return weightSeries(in.Weights, window, now)
	case MetricWorkouts:
		return bucketWorkouts(in.Workouts, window, now, func(w model.Workout) float64 {
			return 1
		})
	case MetricDuration:
		return bucketWorkouts(in.Workouts, window, now, func(w model.Workout) float64 {
			return float64(w.Duration) / 60
		})
	case MetricCalories:
		return bucketWorkouts(in.Workouts, window, now, func(w model.Workout) float64 {
			return float64(w.Calories)
		})
	}
	return nil
}

// weightSeries passes entries through without bucketing; the log already
// holds one entry per date.
func weightSeries(entries []model.WeightEntry, window Window, now time.Time) []Point {
	filtered := make([]model.WeightEntry, 0, len(entries))
	start, bounded := window.Start(now)
	for _, e := range entries {
		if bounded && e.Date.Before(start) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	points := make([]Point, 0, len(filtered))
	for _, e := range filtered {
		points = append(points, Point{
			Label: e.Date.Format(model.LabelDate),
			Value: e.Weight,
		})
	}
	return points
}

// bucketWorkouts groups filtered workouts by calendar date and sums the
// selected value per bucket.
func bucketWorkouts(workouts []model.Workout, window Window, now time.Time, value func(model.Workout) float64) []Point {
	start, bounded := window.Start(now)

	byDay := make(map[time.Time]float64)
	for _, w := range workouts {
		if bounded && w.Date.Before(start) {
			continue
		}
		byDay[w.Day()] += value(w)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]Point, 0, len(days))
	for _, d := range days {
		points = append(points, Point{
			Label: d.Format(model.LabelDate),
			Value: byDay[d],
		})
	}
	return points
}

// ExerciseSeries tracks the heaviest set weight of one exercise across
// workouts, one point per workout date that includes the exercise.
func ExerciseSeries(workouts []model.Workout, exercise string, window Window, now time.Time) []Point {
	start, bounded := window.Start(now)

	type rec struct {
		day time.Time
		max float64
	}
	var recs []rec
	for _, w := range workouts {
		if bounded && w.Date.Before(start) {
			continue
		}
		e, ok := w.FindExercise(exercise)
		if !ok {
			continue
		}
		recs = append(recs, rec{day: w.Day(), max: e.MaxWeight()})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].day.Before(recs[j].day) })

	points := make([]Point, 0, len(recs))
	for _, r := range recs {
		points = append(points, Point{
			Label: r.day.Format(model.LabelDate),
			Value: r.max,
		})
	}
	return points
}

// ParseMetric matches a metric name.
func ParseMetric(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricWeight, MetricWorkouts, MetricDuration, MetricCalories:
		return Metric(s), true
	}
	return "", false
}

// ParseWindow matches a window name.
func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case Last7Days, Last30Days, Last90Days, LastYear, AllTime:
		return Window(s), true
	}
	return "", false
}
