package output

import (
	"time"

	"fittrack/internal/chart"
	"fittrack/internal/model"
	"fittrack/internal/timeseries"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// WorkoutOutput represents a workout in JSON output.
type WorkoutOutput struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Duration  int              `json:"duration_minutes"`
	Calories  int              `json:"calories"`
	Date      string           `json:"date"`
	Notes     string           `json:"notes,omitempty"`
	Exercises []model.Exercise `json:"exercises,omitempty"`
}

// NewWorkoutOutput creates a WorkoutOutput from a Workout.
func NewWorkoutOutput(w model.Workout) WorkoutOutput {
	return WorkoutOutput{
		ID:        w.ID,
		Name:      w.Name,
		Type:      string(w.Type),
		Duration:  w.Duration,
		Calories:  w.Calories,
		Date:      w.Date.Format(model.DateOnly),
		Notes:     w.Notes,
		Exercises: w.Exercises,
	}
}

// GoalOutput represents a goal in JSON output.
type GoalOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category"`
	TargetDate   string  `json:"target_date"`
	CreatedAt    string  `json:"created_at"`
	Progress     int     `json:"progress"`
	Target       float64 `json:"target,omitempty"`
	CurrentValue float64 `json:"current_value,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Completed    bool    `json:"completed"`
}

// NewGoalOutput creates a GoalOutput from a Goal.
func NewGoalOutput(g model.Goal) GoalOutput {
	return GoalOutput{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		Category:     string(g.Category),
		TargetDate:   g.TargetDate.Format(model.DateOnly),
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		Progress:     g.Progress,
		Target:       g.Target,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Completed:    g.Completed,
	}
}

// WeightOutput represents a weight entry in JSON output.
type WeightOutput struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ChartResponse represents the chart data output in JSON.
type ChartResponse struct {
	Metric  string             `json:"metric"`
	Window  string             `json:"window"`
	Points  []timeseries.Point `json:"points"`
	Summary *SummaryOutput     `json:"summary,omitempty"`
}

// SummaryOutput represents chart summary statistics in JSON.
type SummaryOutput struct {
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
	Change  float64 `json:"change"`
	Average float64 `json:"average"`
}

// NewSummaryOutput creates a SummaryOutput from a chart summary.
func NewSummaryOutput(s chart.Summary) *SummaryOutput {
	return &SummaryOutput{
		First:   s.First,
		Last:    s.Last,
		Change:  s.Change,
		Average: s.Average,
	}
}

// PrintError prints an error as JSON.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}

// PrintWorkouts prints a workout list as JSON.
func (j *JSONFormatter) PrintWorkouts(workouts []model.Workout) error {
	out := make([]WorkoutOutput, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, NewWorkoutOutput(w))
	}
	return j.JSON(map[string]any{
		"workouts":    out,
		"total_count": len(out),
	})
}

// PrintGoals prints a goal list as JSON.
func (j *JSONFormatter) PrintGoals(goals []model.Goal) error {
	out := make([]GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, NewGoalOutput(g))
	}
	return j.JSON(map[string]any{
		"goals":       out,
		"total_count": len(out),
	})
}

// PrintWeights prints the weight log as JSON.
func (j *JSONFormatter) PrintWeights(log model.WeightLog) error {
	out := make([]WeightOutput, 0, len(log.Entries))
	for _, e := range log.Entries {
		out = append(out, WeightOutput{
			Date:   e.Date.Format(model.DateOnly),
			Weight: e.Weight,
		})
	}
	return j.JSON(map[string]any{
		"entries":     out,
		"total_count": len(out),
	})
}
