package store

import "fittrack/internal/model"

// Action is a named request to change state. The reducer recognizes the
// concrete types below; anything else is a no-op.
type Action interface {
	Kind() string
}

// Initialize shallow-merges the payload over the current state. Nil or
// empty payload fields are left untouched.
type Initialize struct {
	Workouts       []model.Workout
	Goals          []model.Goal
	CurrentWorkout *model.Workout
	Theme          model.Theme
}

func (Initialize) Kind() string { return "INITIALIZE" }

// AddWorkout appends a workout. The ID is assigned by the store before
// the reducer runs.
type AddWorkout struct {
	ID      string
	Workout model.Workout
}

func (AddWorkout) Kind() string { return "ADD_WORKOUT" }

// UpdateWorkout replaces the workout with a matching id; no-op when the
// id is not found.
type UpdateWorkout struct {
	Workout model.Workout
}

func (UpdateWorkout) Kind() string { return "UPDATE_WORKOUT" }

// DeleteWorkout removes the workout with the given id; no-op when the id
// is not found.
type DeleteWorkout struct {
	ID string
}

func (DeleteWorkout) Kind() string { return "DELETE_WORKOUT" }

// SetCurrentWorkout replaces the in-progress workout draft; nil clears it.
type SetCurrentWorkout struct {
	Workout *model.Workout
}

func (SetCurrentWorkout) Kind() string { return "SET_CURRENT_WORKOUT" }

// AddGoal appends a goal. The ID is assigned by the store before the
// reducer runs.
type AddGoal struct {
	ID   string
	Goal model.Goal
}

func (AddGoal) Kind() string { return "ADD_GOAL" }

// UpdateGoal replaces the goal with a matching id; no-op when the id is
// not found.
type UpdateGoal struct {
	Goal model.Goal
}

func (UpdateGoal) Kind() string { return "UPDATE_GOAL" }

// DeleteGoal removes the goal with the given id; no-op when the id is
// not found.
type DeleteGoal struct {
	ID string
}

func (DeleteGoal) Kind() string { return "DELETE_GOAL" }

// ToggleTheme flips light and dark.
type ToggleTheme struct{}

func (ToggleTheme) Kind() string { return "TOGGLE_THEME" }
