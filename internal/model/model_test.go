package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// Workout Tests
// =============================================================================

func TestParseWorkoutType(t *testing.T) {
	wt, ok := ParseWorkoutType("cardio")
	assert.True(t, ok)
	assert.Equal(t, TypeCardio, wt)

	wt, ok = ParseWorkoutType("STRENGTH")
	assert.True(t, ok)
	assert.Equal(t, TypeStrength, wt)

	_, ok = ParseWorkoutType("swimming")
	assert.False(t, ok)

	_, ok = ParseWorkoutType("")
	assert.False(t, ok)
}

func TestWorkoutDay(t *testing.T) {
	w := Workout{Date: time.Date(2024, 6, 1, 14, 30, 45, 0, time.UTC)}
	assert.Equal(t, date(2024, 6, 1), w.Day())
}

func TestWorkoutDurationHours(t *testing.T) {
	w := Workout{Duration: 90}
	assert.InDelta(t, 1.5, w.DurationHours(), 1e-9)

	w = Workout{Duration: 45}
	assert.InDelta(t, 0.75, w.DurationHours(), 1e-9)
}

func TestExerciseMaxWeight(t *testing.T) {
	e := Exercise{
		Name: "Bench Press",
		Sets: []Set{{Weight: 135, Reps: 10}, {Weight: 185, Reps: 5}, {Weight: 155, Reps: 8}},
	}
	assert.Equal(t, 185.0, e.MaxWeight())

	empty := Exercise{Name: "Plank"}
	assert.Equal(t, 0.0, empty.MaxWeight())
}

func TestWorkoutFindExercise(t *testing.T) {
	w := Workout{
		Exercises: []Exercise{{Name: "Squat"}, {Name: "Deadlift"}},
	}

	e, ok := w.FindExercise("squat")
	assert.True(t, ok)
	assert.Equal(t, "Squat", e.Name)

	_, ok = w.FindExercise("Curl")
	assert.False(t, ok)
}

// =============================================================================
// Goal Tests
// =============================================================================

func TestGoalNormalize(t *testing.T) {
	assert.Equal(t, 0, Goal{Progress: -10}.Normalize().Progress)
	assert.Equal(t, 100, Goal{Progress: 150}.Normalize().Progress)
	assert.Equal(t, 42, Goal{Progress: 42}.Normalize().Progress)

	// Completed goals always read 100%.
	g := Goal{Progress: 10, Completed: true}.Normalize()
	assert.Equal(t, 100, g.Progress)
}

func TestGoalDaysLeft(t *testing.T) {
	now := date(2024, 6, 1)

	g := Goal{TargetDate: date(2024, 6, 11)}
	assert.Equal(t, 10, g.DaysLeft(now))

	overdue := Goal{TargetDate: date(2024, 5, 30)}
	assert.Less(t, overdue.DaysLeft(now), 0)
}

func TestParseGoalCategory(t *testing.T) {
	c, ok := ParseGoalCategory("Strength")
	assert.True(t, ok)
	assert.Equal(t, CategoryStrength, c)

	_, ok = ParseGoalCategory("cooking")
	assert.False(t, ok)
}

// =============================================================================
// WeightLog Tests
// =============================================================================

func TestWeightLogUpsertReplacesSameDate(t *testing.T) {
	var log WeightLog
	log.Upsert(WeightEntry{Date: date(2024, 6, 1), Weight: 180})
	log.Upsert(WeightEntry{Date: date(2024, 6, 1), Weight: 178})

	assert.Len(t, log.Entries, 1)
	assert.Equal(t, 178.0, log.Entries[0].Weight)
}

func TestWeightLogUpsertKeepsSorted(t *testing.T) {
	var log WeightLog
	log.Upsert(WeightEntry{Date: date(2024, 6, 5), Weight: 179})
	log.Upsert(WeightEntry{Date: date(2024, 6, 1), Weight: 180})
	log.Upsert(WeightEntry{Date: date(2024, 6, 3), Weight: 178})

	assert.Len(t, log.Entries, 3)
	assert.Equal(t, date(2024, 6, 1), log.Entries[0].Date)
	assert.Equal(t, date(2024, 6, 3), log.Entries[1].Date)
	assert.Equal(t, date(2024, 6, 5), log.Entries[2].Date)
}

func TestWeightLogLatest(t *testing.T) {
	var log WeightLog
	_, ok := log.Latest()
	assert.False(t, ok)

	log.Upsert(WeightEntry{Date: date(2024, 6, 1), Weight: 180})
	log.Upsert(WeightEntry{Date: date(2024, 6, 8), Weight: 178.5})

	latest, ok := log.Latest()
	assert.True(t, ok)
	assert.Equal(t, 178.5, latest.Weight)
}

// =============================================================================
// AppState Tests
// =============================================================================

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Empty(t, s.Workouts)
	assert.Empty(t, s.Goals)
	assert.Nil(t, s.CurrentWorkout)
	assert.Equal(t, ThemeLight, s.Theme)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}

func TestAppStateClone(t *testing.T) {
	s := AppState{
		Workouts: []Workout{{ID: "w1", Name: "Run"}},
		Goals:    []Goal{{ID: "g1", Name: "Lose weight"}},
		Theme:    ThemeDark,
	}

	c := s.Clone()
	c.Workouts[0].Name = "Swim"
	c.Goals = append(c.Goals, Goal{ID: "g2"})

	assert.Equal(t, "Run", s.Workouts[0].Name)
	assert.Len(t, s.Goals, 1)
}

func TestAppStateLookups(t *testing.T) {
	s := AppState{
		Workouts: []Workout{{ID: "w1"}, {ID: "w2"}},
		Goals:    []Goal{{ID: "g1"}},
	}

	w, ok := s.WorkoutByID("w2")
	assert.True(t, ok)
	assert.Equal(t, "w2", w.ID)

	_, ok = s.WorkoutByID("nope")
	assert.False(t, ok)

	g, ok := s.GoalByID("g1")
	assert.True(t, ok)
	assert.Equal(t, "g1", g.ID)
}
