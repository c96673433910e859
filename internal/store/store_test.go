package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/model"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// =============================================================================
// Reducer Tests
// =============================================================================

func TestReduceAddWorkout(t *testing.T) {
	state := model.DefaultState()
	next := Reduce(state, AddWorkout{ID: "w1", Workout: model.Workout{Name: "Run"}})

	assert.Len(t, next.Workouts, 1)
	assert.Equal(t, "w1", next.Workouts[0].ID)
	assert.Equal(t, "Run", next.Workouts[0].Name)
	// Input state is untouched.
	assert.Empty(t, state.Workouts)
}

func TestReduceUpdateWorkout(t *testing.T) {
	state := model.AppState{Workouts: []model.Workout{{ID: "w1", Name: "Run"}}}

	next := Reduce(state, UpdateWorkout{Workout: model.Workout{ID: "w1", Name: "Swim"}})
	assert.Equal(t, "Swim", next.Workouts[0].Name)

	// Unknown id is a no-op.
	next = Reduce(state, UpdateWorkout{Workout: model.Workout{ID: "missing", Name: "Bike"}})
	assert.Len(t, next.Workouts, 1)
	assert.Equal(t, "Run", next.Workouts[0].Name)
}

func TestReduceDeleteWorkout(t *testing.T) {
	state := model.AppState{Workouts: []model.Workout{{ID: "w1"}, {ID: "w2"}}}

	next := Reduce(state, DeleteWorkout{ID: "w1"})
	assert.Len(t, next.Workouts, 1)
	assert.Equal(t, "w2", next.Workouts[0].ID)

	next = Reduce(state, DeleteWorkout{ID: "missing"})
	assert.Len(t, next.Workouts, 2)
}

func TestReduceSetCurrentWorkout(t *testing.T) {
	draft := &model.Workout{Name: "Leg Day"}

	next := Reduce(model.DefaultState(), SetCurrentWorkout{Workout: draft})
	assert.NotNil(t, next.CurrentWorkout)
	assert.Equal(t, "Leg Day", next.CurrentWorkout.Name)

	cleared := Reduce(next, SetCurrentWorkout{Workout: nil})
	assert.Nil(t, cleared.CurrentWorkout)
}

func TestReduceGoals(t *testing.T) {
	state := Reduce(model.DefaultState(), AddGoal{ID: "g1", Goal: model.Goal{Name: "5k", Progress: 150}})
	assert.Len(t, state.Goals, 1)
	// Progress is clamped on the way in.
	assert.Equal(t, 100, state.Goals[0].Progress)

	state = Reduce(state, UpdateGoal{Goal: model.Goal{ID: "g1", Name: "10k", Progress: -5}})
	assert.Equal(t, "10k", state.Goals[0].Name)
	assert.Equal(t, 0, state.Goals[0].Progress)

	state = Reduce(state, DeleteGoal{ID: "g1"})
	assert.Empty(t, state.Goals)
}

func TestReduceInitializeMerges(t *testing.T) {
	state := model.AppState{
		Workouts: []model.Workout{{ID: "w1"}},
		Theme:    model.ThemeDark,
	}

	// Empty payload fields leave existing state alone.
	next := Reduce(state, Initialize{Goals: []model.Goal{{ID: "g1"}}})
	assert.Len(t, next.Workouts, 1)
	assert.Len(t, next.Goals, 1)
	assert.Equal(t, model.ThemeDark, next.Theme)

	next = Reduce(state, Initialize{Theme: model.ThemeLight})
	assert.Equal(t, model.ThemeLight, next.Theme)
}

func TestReduceToggleTheme(t *testing.T) {
	state := model.DefaultState()
	once := Reduce(state, ToggleTheme{})
	twice := Reduce(once, ToggleTheme{})

	assert.Equal(t, model.ThemeDark, once.Theme)
	assert.Equal(t, state.Theme, twice.Theme)
}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	state := model.AppState{Workouts: []model.Workout{{ID: "w1"}}}
	next := Reduce(state, unknownAction{})
	assert.Equal(t, state, next)
}

type unknownAction struct{}

func (unknownAction) Kind() string { return "UNKNOWN" }

func TestReduceDeterministic(t *testing.T) {
	state := model.AppState{Workouts: []model.Workout{{ID: "w1", Name: "Run"}}}
	action := AddWorkout{ID: "w2", Workout: model.Workout{Name: "Swim"}}

	a := Reduce(state, action)
	b := Reduce(state, action)
	assert.Equal(t, a, b)
}

// =============================================================================
// Store Tests
// =============================================================================

func TestStoreDispatchAssignsIDs(t *testing.T) {
	s := New(model.DefaultState(), WithIDFunc(sequentialIDs()))

	s.Dispatch(AddWorkout{Workout: model.Workout{Name: "Run"}})
	s.Dispatch(AddWorkout{Workout: model.Workout{Name: "Swim"}})

	state := s.State()
	assert.Len(t, state.Workouts, 2)
	assert.Equal(t, "id-1", state.Workouts[0].ID)
	assert.Equal(t, "id-2", state.Workouts[1].ID)
	assert.NotEqual(t, state.Workouts[0].ID, state.Workouts[1].ID)
}

func TestStoreDispatchKeepsExplicitID(t *testing.T) {
	s := New(model.DefaultState(), WithIDFunc(sequentialIDs()))
	s.Dispatch(AddGoal{ID: "fixed", Goal: model.Goal{Name: "5k"}})

	state := s.State()
	assert.Equal(t, "fixed", state.Goals[0].ID)
}

func TestStoreNotifiesListeners(t *testing.T) {
	s := New(model.DefaultState(), WithIDFunc(sequentialIDs()))

	var seen []model.AppState
	s.Subscribe(func(state model.AppState) {
		seen = append(seen, state)
	})

	s.Dispatch(AddWorkout{Workout: model.Workout{Name: "Run"}})
	s.Dispatch(ToggleTheme{})

	assert.Len(t, seen, 2)
	assert.Len(t, seen[0].Workouts, 1)
	assert.Equal(t, model.ThemeDark, seen[1].Theme)
}

func TestStoreStateReturnsCopy(t *testing.T) {
	s := New(model.AppState{Workouts: []model.Workout{{ID: "w1", Name: "Run"}}})

	got := s.State()
	got.Workouts[0].Name = "Mutated"

	assert.Equal(t, "Run", s.State().Workouts[0].Name)
}
