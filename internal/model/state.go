package model

// Theme is the UI color theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// AppState is the canonical application state. It is exclusively owned by
// the store; everything else works on copies or derived views.
type AppState struct {
	Workouts       []Workout `json:"workouts"`
	Goals          []Goal    `json:"goals"`
	CurrentWorkout *Workout  `json:"currentWorkout,omitempty"`
	Theme          Theme     `json:"theme"`
}

// DefaultState returns the empty initial state.
func DefaultState() AppState {
	return AppState{Theme: ThemeLight}
}

// Clone returns a deep copy so callers can hold state without aliasing
// the store's slices.
func (s AppState) Clone() AppState {
	c := s
	c.Workouts = append([]Workout(nil), s.Workouts...)
	c.Goals = append([]Goal(nil), s.Goals...)
	if s.CurrentWorkout != nil {
		w := *s.CurrentWorkout
		c.CurrentWorkout = &w
	}
	return c
}

// WorkoutByID returns the workout with the given id.
func (s AppState) WorkoutByID(id string) (Workout, bool) {
	for _, w := range s.Workouts {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}

// GoalByID returns the goal with the given id.
func (s AppState) GoalByID(id string) (Goal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}
