// Package parser turns user-supplied date and time-range expressions
// into values the rest of Fittrack works with.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"fittrack/internal/errors"
	"fittrack/internal/model"
)

// ParseDate parses a calendar date. It accepts the ISO form (2024-06-01)
// directly and falls back to natural language ("yesterday", "last monday",
// "june 1st") via go-dateparser. The result is truncated to midnight.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return truncate(now), nil
	}

	if t, err := time.ParseInLocation(model.DateOnly, input, now.Location()); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "'%s'", input)
	}
	return truncate(result.Time), nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
