package store

import "fittrack/internal/model"

// Reduce maps (state, action) to the next state. It never mutates its
// input and reads nothing outside its arguments, so the same inputs
// always yield the same output.
func Reduce(state model.AppState, action Action) model.AppState {
	switch a := action.(type) {
	case Initialize:
		next := state.Clone()
		if a.Workouts != nil {
			next.Workouts = append([]model.Workout(nil), a.Workouts...)
		}
		if a.Goals != nil {
			next.Goals = append([]model.Goal(nil), a.Goals...)
		}
		if a.CurrentWorkout != nil {
			w := *a.CurrentWorkout
			next.CurrentWorkout = &w
		}
		if a.Theme != "" {
			next.Theme = a.Theme
		}
		return next

	case AddWorkout:
		next := state.Clone()
		w := a.Workout
		w.ID = a.ID
		next.Workouts = append(next.Workouts, w)
		return next

	case UpdateWorkout:
		next := state.Clone()
		for i, w := range next.Workouts {
			if w.ID == a.Workout.ID {
				next.Workouts[i] = a.Workout
				break
			}
		}
		return next

	case DeleteWorkout:
		next := state.Clone()
		for i, w := range next.Workouts {
			if w.ID == a.ID {
				next.Workouts = append(next.Workouts[:i], next.Workouts[i+1:]...)
				break
			}
		}
		return next

	case SetCurrentWorkout:
		next := state.Clone()
		if a.Workout == nil {
			next.CurrentWorkout = nil
		} else {
			w := *a.Workout
			next.CurrentWorkout = &w
		}
		return next

	case AddGoal:
		next := state.Clone()
		g := a.Goal.Normalize()
		g.ID = a.ID
		next.Goals = append(next.Goals, g)
		return next

	case UpdateGoal:
		next := state.Clone()
		for i, g := range next.Goals {
			if g.ID == a.Goal.ID {
				next.Goals[i] = a.Goal.Normalize()
				break
			}
		}
		return next

	case DeleteGoal:
		next := state.Clone()
		for i, g := range next.Goals {
			if g.ID == a.ID {
				next.Goals = append(next.Goals[:i], next.Goals[i+1:]...)
				break
			}
		}
		return next

	case ToggleTheme:
		next := state.Clone()
		next.Theme = next.Theme.Toggle()
		return next

	default:
		return state
	}
}
