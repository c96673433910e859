package model

import (
	"strings"
	"time"
)

// WorkoutType classifies a workout.
type WorkoutType string

const (
	TypeStrength    WorkoutType = "Strength"
	TypeCardio      WorkoutType = "Cardio"
	TypeFlexibility WorkoutType = "Flexibility"
	TypeBalance     WorkoutType = "Balance"
	TypeSports      WorkoutType = "Sports"
	TypeOther       WorkoutType = "Other"
)

// WorkoutTypes lists all valid workout types.
var WorkoutTypes = []WorkoutType{
	TypeStrength, TypeCardio, TypeFlexibility, TypeBalance, TypeSports, TypeOther,
}

// ParseWorkoutType matches a workout type case-insensitively.
func ParseWorkoutType(s string) (WorkoutType, bool) {
	for _, t := range WorkoutTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Set is a single set within an exercise: weight lifted and repetitions.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Exercise is a named exercise with its ordered sets, as captured by the
// detailed logging form.
type Exercise struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// MaxWeight returns the heaviest set weight, or 0 for no sets.
func (e Exercise) MaxWeight() float64 {
	var max float64
	for _, s := range e.Sets {
		if s.Weight > max {
			max = s.Weight
		}
	}
	return max
}

// Workout is a single logged training session.
type Workout struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      WorkoutType `json:"type"`
	Duration  int         `json:"duration"` // minutes
	Calories  int         `json:"calories"`
	Date      time.Time   `json:"date"`
	Notes     string      `json:"notes,omitempty"`
	Exercises []Exercise  `json:"exercises,omitempty"`
}

// Day returns the workout's calendar date with time-of-day stripped.
func (w Workout) Day() time.Time {
	y, m, d := w.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.Date.Location())
}

// DurationHours returns the duration converted from minutes to hours.
func (w Workout) DurationHours() float64 {
	return float64(w.Duration) / 60
}

// FindExercise returns the named exercise, matched case-insensitively.
func (w Workout) FindExercise(name string) (Exercise, bool) {
	for _, e := range w.Exercises {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Exercise{}, false
}
