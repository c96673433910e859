package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"fittrack/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func testConfig(state model.AppState, weights model.WeightLog) DashboardConfig {
	return DashboardConfig{
		LoadState:   func() model.AppState { return state },
		LoadWeights: func() model.WeightLog { return weights },
		Now:         fixedNow,
	}
}

func testState() model.AppState {
	now := fixedNow()
	return model.AppState{
		Workouts: []model.Workout{
			{ID: "w1", Name: "Morning Run", Type: model.TypeCardio,
				Duration: 45, Calories: 320, Date: now.AddDate(0, 0, -1)},
			{ID: "w2", Name: "Upper Body", Type: model.TypeStrength,
				Duration: 60, Calories: 250, Date: now.AddDate(0, 0, -3)},
		},
		Goals: []model.Goal{
			{ID: "g1", Name: "Run a 10k", Progress: 40,
				TargetDate: now.AddDate(0, 1, 0)},
		},
	}
}

func TestDashboardViewShowsData(t *testing.T) {
	m := NewDashboard(testConfig(testState(), model.WeightLog{}))
	view := m.View()

	assert.Contains(t, view, "FitTrack Dashboard")
	assert.Contains(t, view, "Morning Run")
	assert.Contains(t, view, "Upper Body")
	assert.Contains(t, view, "Run a 10k")
	assert.Contains(t, view, "40%")
}

func TestDashboardViewEmptyState(t *testing.T) {
	m := NewDashboard(testConfig(model.DefaultState(), model.WeightLog{}))
	view := m.View()

	assert.Contains(t, view, "No workouts logged yet.")
	assert.Contains(t, view, "No goals set yet.")
	assert.Contains(t, view, "No data for this range yet.")
}

func TestDashboardWeekSummaryCounts(t *testing.T) {
	m := NewDashboard(testConfig(testState(), model.WeightLog{}))
	view := m.View()

	// Both workouts fall inside the last seven days.
	assert.Contains(t, view, "2")
	assert.Contains(t, view, "1h 45m")
}

func TestDashboardQuitKeys(t *testing.T) {
	m := NewDashboard(testConfig(model.DefaultState(), model.WeightLog{}))

	for _, key := range []string{"q", "ctrl+c", "esc"} {
		_, cmd := m.Update(keyMsg(key))
		assert.NotNil(t, cmd, "key %q should quit", key)
	}
}

func TestDashboardCyclesMetricAndWindow(t *testing.T) {
	m := NewDashboard(testConfig(model.DefaultState(), model.WeightLog{}))
	assert.Equal(t, 0, m.metricIdx)

	next, _ := m.Update(keyMsg("m"))
	m = next.(DashboardModel)
	assert.Equal(t, 1, m.metricIdx)

	// Cycling wraps around.
	for i := 0; i < len(chartMetrics); i++ {
		next, _ = m.Update(keyMsg("m"))
		m = next.(DashboardModel)
	}
	assert.Equal(t, 1, m.metricIdx)

	start := m.windowIdx
	next, _ = m.Update(keyMsg("w"))
	m = next.(DashboardModel)
	assert.Equal(t, (start+1)%len(chartWindows), m.windowIdx)
}

func TestDashboardRefreshPicksUpChanges(t *testing.T) {
	state := model.DefaultState()
	cfg := DashboardConfig{
		LoadState:   func() model.AppState { return state },
		LoadWeights: func() model.WeightLog { return model.WeightLog{} },
		Now:         fixedNow,
	}
	m := NewDashboard(cfg)
	assert.NotContains(t, m.View(), "Evening Swim")

	state.Workouts = append(state.Workouts, model.Workout{
		ID: "w9", Name: "Evening Swim", Type: model.TypeCardio,
		Duration: 30, Date: fixedNow(),
	})
	next, _ := m.Update(keyMsg("r"))
	m = next.(DashboardModel)
	assert.Contains(t, m.View(), "Evening Swim")
}

func TestDashboardWindowResize(t *testing.T) {
	m := NewDashboard(testConfig(model.DefaultState(), model.WeightLog{}))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(DashboardModel)
	assert.Equal(t, 120, m.width)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}
