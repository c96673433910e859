package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrWorkoutNotFound:    "Use 'fittrack workouts list' to see logged workouts and their ids.",
	ErrGoalNotFound:       "Use 'fittrack goal list' to see your goals and their ids.",
	ErrInvalidWorkoutType: "Valid types: Strength, Cardio, Flexibility, Balance, Sports, Other.",
	ErrInvalidCategory:    "Valid categories: strength, endurance, weight, habit, nutrition, other.",
	ErrInvalidDate:        "Try formats like '2024-06-01', 'yesterday', or 'last monday'.",
	ErrInvalidDuration:    "Duration is whole minutes, e.g. --duration 45.",
	ErrInvalidWeight:      "Weight must be a positive number, e.g. --weight 178.5.",
	ErrInvalidMetric:      "Valid metrics: weight, workouts, duration, calories.",
	ErrInvalidWindow:      "Valid windows: 7d, 30d, 90d, 1y, all.",
	ErrTargetDatePast:     "Pick a target date of today or later.",
	ErrInvalidCredentials: "Try demo@example.com / password.",
	ErrDatabaseCorrupted:  "The stored snapshot could not be read; Fittrack starts from an empty state.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}

// FormatError renders an error with its suggestion for CLI display.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if s := GetSuggestion(err); s != "" {
		return msg + "\n  Hint: " + s
	}
	return msg
}
