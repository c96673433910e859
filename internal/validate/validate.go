// Package validate provides input validation for the Fittrack CLI.
// Validation happens at the command edge; the store itself accepts
// whatever the forms hand it.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"fittrack/internal/errors"
	"fittrack/internal/model"
)

const (
	// MaxNameLength is the maximum length for workout and goal names.
	MaxNameLength = 128
	// MaxNoteLength is the maximum length for notes and descriptions.
	MaxNoteLength = 4096
	// MaxDurationMinutes bounds a single workout duration (24 hours).
	MaxDurationMinutes = 24 * 60
)

// Name validates a workout or goal display name.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Name cannot be empty", "Provide a name, e.g. 'Morning Run'")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// Duration validates a workout duration in minutes.
func Duration(minutes int) error {
	if minutes <= 0 {
		return errors.NewUserError("Duration must be positive",
			"Give the workout length in minutes, e.g. --duration 45")
	}
	if minutes > MaxDurationMinutes {
		return errors.NewUserError("Duration too long",
			"Durations are capped at 24 hours (1440 minutes)")
	}
	return nil
}

// Calories validates a calorie count.
func Calories(calories int) error {
	if calories < 0 {
		return errors.NewUserError("Calories cannot be negative",
			"Use 0 if you don't track calories for this workout")
	}
	return nil
}

// WorkoutType validates and normalizes a workout type.
func WorkoutType(s string) (model.WorkoutType, error) {
	t, ok := model.ParseWorkoutType(s)
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidWorkoutType, "'%s'", s)
	}
	return t, nil
}

// GoalCategory validates and normalizes a goal category.
func GoalCategory(s string) (model.GoalCategory, error) {
	c, ok := model.ParseGoalCategory(s)
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidCategory, "'%s'", s)
	}
	return c, nil
}

// TargetDate validates that a goal target date is not in the past.
// Today counts as valid.
func TargetDate(target, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(today) {
		return errors.ErrTargetDatePast
	}
	return nil
}

// Progress validates a goal progress percentage.
func Progress(progress int) error {
	if progress < 0 || progress > 100 {
		return errors.NewUserError("Progress must be between 0 and 100",
			"Give a percentage, e.g. --progress 60")
	}
	return nil
}

// Weight validates a body-weight measurement.
func Weight(weight float64) error {
	if weight <= 0 {
		return errors.ErrInvalidWeight
	}
	return nil
}

// Note validates a note or description.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}
