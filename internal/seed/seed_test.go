package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/model"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestGenerateDefaults(t *testing.T) {
	res := Generate(Options{Seed: 1}, testNow)

	assert.Len(t, res.Workouts, 20)
	assert.Len(t, res.Goals, 3)
	assert.Len(t, res.Weights, 15)
}

func TestGenerateCounts(t *testing.T) {
	res := Generate(Options{Workouts: 5, Goals: 2, Weights: 4, Seed: 1}, testNow)

	assert.Len(t, res.Workouts, 5)
	assert.Len(t, res.Goals, 2)
	assert.Len(t, res.Weights, 4)
}

func TestGenerateGoalCapAtTemplates(t *testing.T) {
	res := Generate(Options{Goals: 50, Seed: 1}, testNow)
	assert.Len(t, res.Goals, len(goalTemplates))
}

func TestGenerateWorkoutsValid(t *testing.T) {
	res := Generate(Options{Seed: 42, Days: 30}, testNow)

	for _, w := range res.Workouts {
		assert.NotEmpty(t, w.Name)
		_, ok := model.ParseWorkoutType(string(w.Type))
		assert.True(t, ok)
		assert.Greater(t, w.Duration, 0)
		assert.GreaterOrEqual(t, w.Calories, 0)
		assert.False(t, w.Date.After(testNow))
		assert.False(t, w.Date.Before(testNow.AddDate(0, 0, -30)))
	}
}

func TestGenerateGoalsValid(t *testing.T) {
	res := Generate(Options{Seed: 42}, testNow)

	for _, g := range res.Goals {
		assert.NotEmpty(t, g.Name)
		assert.True(t, g.TargetDate.After(testNow), "target dates are in the future")
		assert.GreaterOrEqual(t, g.Progress, 0)
		assert.LessOrEqual(t, g.Progress, 100)
	}
}

func TestGenerateWeightsSortedAscending(t *testing.T) {
	res := Generate(Options{Seed: 42}, testNow)

	for i := 1; i < len(res.Weights); i++ {
		assert.False(t, res.Weights[i].Date.Before(res.Weights[i-1].Date))
	}
	for _, e := range res.Weights {
		assert.Greater(t, e.Weight, 0.0)
	}
}

func TestGenerateReproducible(t *testing.T) {
	a := Generate(Options{Seed: 7}, testNow)
	b := Generate(Options{Seed: 7}, testNow)
	assert.Equal(t, a, b)
}
