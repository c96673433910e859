package parser

import (
	"strconv"
	"strings"

	"fittrack/internal/errors"
	"fittrack/internal/model"
)

// ParseExercise parses the logging form's exercise shorthand:
//
//	NAME:WEIGHTxREPS[,WEIGHTxREPS...]
//
// e.g. "Bench Press:100x5,105x5,110x3". Weight may be fractional.
func ParseExercise(input string) (model.Exercise, error) {
	name, sets, ok := strings.Cut(input, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return model.Exercise{}, errors.NewUserErrorWithField(
			"exercise", input,
			"Invalid exercise format",
			"Use NAME:WEIGHTxREPS, e.g. 'Bench Press:100x5,105x5'")
	}

	exercise := model.Exercise{Name: name}
	for _, part := range strings.Split(sets, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, rs, ok := strings.Cut(strings.ToLower(part), "x")
		if !ok {
			return model.Exercise{}, errors.NewUserErrorWithField(
				"set", part,
				"Invalid set format",
				"Each set is WEIGHTxREPS, e.g. '100x5'")
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
		if err != nil || weight < 0 {
			return model.Exercise{}, errors.NewUserErrorWithField(
				"weight", ws,
				"Invalid set weight",
				"Weight must be a non-negative number")
		}
		reps, err := strconv.Atoi(strings.TrimSpace(rs))
		if err != nil || reps <= 0 {
			return model.Exercise{}, errors.NewUserErrorWithField(
				"reps", rs,
				"Invalid rep count",
				"Reps must be a positive whole number")
		}
		exercise.Sets = append(exercise.Sets, model.Set{Weight: weight, Reps: reps})
	}

	if len(exercise.Sets) == 0 {
		return model.Exercise{}, errors.NewUserErrorWithField(
			"exercise", input,
			"Exercise has no sets",
			"Add at least one set, e.g. 'Bench Press:100x5'")
	}
	return exercise, nil
}
