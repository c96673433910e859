// Package seed generates plausible demo data so a fresh install has
// something to chart.
package seed

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"fittrack/internal/model"
)

// workoutNames maps each workout type to names it could plausibly carry.
var workoutNames = map[model.WorkoutType][]string{
	model.TypeCardio:      {"Morning Run", "HIIT Training", "Swimming", "Cycling", "Rowing"},
	model.TypeStrength:    {"Upper Body Workout", "Lower Body Strength", "Core Training", "Full Body Circuit"},
	model.TypeFlexibility: {"Yoga Session", "Stretching Routine", "Pilates"},
	model.TypeBalance:     {"Balance Drills", "Tai Chi"},
	model.TypeSports:      {"Basketball", "Tennis Match", "Soccer Practice"},
	model.TypeOther:       {"Hike", "Long Walk"},
}

var goalTemplates = []struct {
	name     string
	category model.GoalCategory
	target   float64
	unit     string
}{
	{"Bench press bodyweight", model.CategoryStrength, 180, "lbs"},
	{"Run a 10k", model.CategoryEndurance, 10, "km"},
	{"Reach goal weight", model.CategoryWeight, 170, "lbs"},
	{"Work out 4x per week", model.CategoryHabit, 4, "sessions"},
	{"Hit daily protein target", model.CategoryNutrition, 140, "g"},
}

// Options controls how much demo data is generated.
type Options struct {
	Workouts int   // number of workouts (default 20)
	Days     int   // spread over this many past days (default 60)
	Goals    int   // number of goals (default 3, capped at templates)
	Weights  int   // number of weight entries (default 15)
	Seed     int64 // non-zero for reproducible output
}

// Result holds generated demo records.
type Result struct {
	Workouts []model.Workout
	Goals    []model.Goal
	Weights  []model.WeightEntry
}

// Generate produces demo workouts, goals, and weight entries ending at
// now and reaching back Options.Days.
func Generate(opts Options, now time.Time) Result {
	if opts.Workouts == 0 {
		opts.Workouts = 20
	}
	if opts.Days == 0 {
		opts.Days = 60
	}
	if opts.Goals == 0 {
		opts.Goals = 3
	}
	if opts.Goals > len(goalTemplates) {
		opts.Goals = len(goalTemplates)
	}
	if opts.Weights == 0 {
		opts.Weights = 15
	}

	faker := gofakeit.New(opts.Seed)

	var res Result
	for i := 0; i < opts.Workouts; i++ {
		wt := model.WorkoutTypes[faker.Number(0, len(model.WorkoutTypes)-1)]
		names := workoutNames[wt]
		w := model.Workout{
			Name:     names[faker.Number(0, len(names)-1)],
			Type:     wt,
			Duration: faker.Number(20, 90),
			Calories: faker.Number(100, 600),
			Date:     day(now, -faker.Number(0, opts.Days)),
		}
		if faker.Bool() {
			w.Notes = faker.Sentence(8)
		}
		if wt == model.TypeStrength {
			w.Exercises = strengthExercises(faker)
		}
		res.Workouts = append(res.Workouts, w)
	}

	for i := 0; i < opts.Goals; i++ {
		tpl := goalTemplates[i]
		progress := faker.Number(10, 90)
		res.Goals = append(res.Goals, model.Goal{
			Name:         tpl.name,
			Description:  faker.Sentence(6),
			Category:     tpl.category,
			TargetDate:   day(now, faker.Number(14, 120)),
			CreatedAt:    now,
			Progress:     progress,
			Target:       tpl.target,
			CurrentValue: tpl.target * float64(progress) / 100,
			Unit:         tpl.unit,
		})
	}

	// Weight entries drift slightly around a starting weight, one entry
	// every few days, oldest first.
	weight := float64(faker.Number(150, 200))
	for i := opts.Weights - 1; i >= 0; i-- {
		weight += faker.Float64Range(-1.5, 1.0)
		res.Weights = append(res.Weights, model.WeightEntry{
			Date:   day(now, -i*opts.Days/opts.Weights),
			Weight: round1(weight),
		})
	}

	return res
}

func strengthExercises(faker *gofakeit.Faker) []model.Exercise {
	lifts := []string{"Bench Press", "Squat", "Deadlift", "Overhead Press", "Barbell Row"}
	n := faker.Number(2, 4)
	var out []model.Exercise
	for i := 0; i < n; i++ {
		e := model.Exercise{Name: lifts[faker.Number(0, len(lifts)-1)]}
		base := float64(faker.Number(8, 24)) * 10
		for s := 0; s < faker.Number(2, 5); s++ {
			e.Sets = append(e.Sets, model.Set{
				Weight: base + float64(s*5),
				Reps:   faker.Number(3, 12),
			})
		}
		out = append(out, e)
	}
	return out
}

func day(now time.Time, offset int) time.Time {
	y, m, d := now.AddDate(0, 0, offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
