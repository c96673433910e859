package parser

import (
	"strings"

	"fittrack/internal/errors"
	"fittrack/internal/timeseries"
)

// windowAliases maps accepted spellings to canonical windows.
var windowAliases = map[string]timeseries.Window{
	"7d":           timeseries.Last7Days,
	"7days":        timeseries.Last7Days,
	"week":         timeseries.Last7Days,
	"last 7 days":  timeseries.Last7Days,
	"30d":          timeseries.Last30Days,
	"30days":       timeseries.Last30Days,
	"month":        timeseries.Last30Days,
	"last 30 days": timeseries.Last30Days,
	"90d":          timeseries.Last90Days,
	"90days":       timeseries.Last90Days,
	"quarter":      timeseries.Last90Days,
	"last 90 days": timeseries.Last90Days,
	"1y":           timeseries.LastYear,
	"year":         timeseries.LastYear,
	"last year":    timeseries.LastYear,
	"all":          timeseries.AllTime,
	"alltime":      timeseries.AllTime,
	"all time":     timeseries.AllTime,
}

// ParseWindow parses a time-window expression like "30d" or "last year".
func ParseWindow(input string) (timeseries.Window, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if w, ok := windowAliases[normalized]; ok {
		return w, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidWindow, "'%s'", input)
}

// ParseMetric parses a chart metric name.
func ParseMetric(input string) (timeseries.Metric, error) {
	m, ok := timeseries.ParseMetric(strings.ToLower(strings.TrimSpace(input)))
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidMetric, "'%s'", input)
	}
	return m, nil
}
