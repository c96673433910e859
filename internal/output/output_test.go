package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/model"
)

func testFormatter(buf *bytes.Buffer) *Formatter {
	f := NewFormatter()
	f.Writer = buf
	f.ColorMode = ColorNever
	return f
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "0m", FormatMinutes(0))
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-01", FormatDate(d))
	assert.Equal(t, "6/1/2024", FormatLabelDate(d))
}

func TestFormatValueAndChange(t *testing.T) {
	assert.Equal(t, "178.5", FormatValue(178.5))
	assert.Equal(t, "178.0", FormatValue(178))
	assert.Equal(t, "+1.5", FormatChange(1.5))
	assert.Equal(t, "-2.0", FormatChange(-2))
	assert.Equal(t, "0.0", FormatChange(0))
}

func TestIsColorEnabled(t *testing.T) {
	f := NewFormatter()
	f.Writer = &bytes.Buffer{}

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto with a non-terminal writer disables color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := testFormatter(&buf)

	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var out map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 3, out["count"])
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(testFormatter(&buf))

	c.Success("saved")
	c.Warning("careful")
	c.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ failed")
}

func TestPrintWorkout(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(testFormatter(&buf))

	c.PrintWorkout(model.Workout{
		Name:     "Morning Run",
		Type:     model.TypeCardio,
		Duration: 45,
		Calories: 320,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Notes:    "Felt great",
	})

	out := buf.String()
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "Morning Run")
	assert.Contains(t, out, "Cardio")
	assert.Contains(t, out, "45m")
	assert.Contains(t, out, "Felt great")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░]", ProgressBar(0, 4))
	assert.Equal(t, "[██░░]", ProgressBar(50, 4))
	assert.Equal(t, "[████]", ProgressBar(100, 4))
	// Out-of-range values clamp.
	assert.Equal(t, "[░░░░]", ProgressBar(-5, 4))
	assert.Equal(t, "[████]", ProgressBar(150, 4))
}

// =============================================================================
// JSON Formatter Tests
// =============================================================================

func TestJSONPrintWorkouts(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(testFormatter(&buf))

	require.NoError(t, j.PrintWorkouts([]model.Workout{
		{ID: "w1", Name: "Run", Type: model.TypeCardio, Duration: 30,
			Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}))

	var out struct {
		Workouts   []WorkoutOutput `json:"workouts"`
		TotalCount int             `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Workouts, 1)
	assert.Equal(t, "w1", out.Workouts[0].ID)
	assert.Equal(t, "Run", out.Workouts[0].Name)
	assert.Equal(t, "2024-06-01", out.Workouts[0].Date)
	assert.Equal(t, 1, out.TotalCount)
}

func TestJSONPrintError(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(testFormatter(&buf))

	require.NoError(t, j.PrintError("error", "invalid duration", "use minutes"))

	var out ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "error", out.Status)
	assert.Equal(t, "invalid duration", out.Error)
	assert.Equal(t, "use minutes", out.Suggestion)
}
