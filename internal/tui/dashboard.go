// Package tui renders the interactive dashboard: week summary, recent
// workouts, goal progress, and a live chart panel.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/chart"
	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/timeseries"
)

// DashboardConfig wires the dashboard to the rest of the application.
type DashboardConfig struct {
	// LoadState returns the current application state.
	LoadState func() model.AppState
	// LoadWeights returns the body-weight log.
	LoadWeights func() model.WeightLog
	// Now returns the current time, overridable in tests.
	Now func() time.Time
}

var chartMetrics = []timeseries.Metric{
	timeseries.MetricWeight,
	timeseries.MetricWorkouts,
	timeseries.MetricDuration,
	timeseries.MetricCalories,
}

var chartWindows = []timeseries.Window{
	timeseries.Last7Days,
	timeseries.Last30Days,
	timeseries.Last90Days,
	timeseries.LastYear,
	timeseries.AllTime,
}

// DashboardModel is the bubbletea model behind the dashboard command.
type DashboardModel struct {
	config DashboardConfig

	state   model.AppState
	weights model.WeightLog
	now     time.Time

	metricIdx int
	windowIdx int

	width  int
	height int
}

type tickMsg time.Time

// NewDashboard builds the dashboard model and loads its initial data.
func NewDashboard(config DashboardConfig) DashboardModel {
	if config.Now == nil {
		config.Now = time.Now
	}
	m := DashboardModel{
		config:    config,
		windowIdx: 1, // 30 days
		width:     80,
	}
	m.refresh()
	return m
}

func (m *DashboardModel) refresh() {
	m.state = m.config.LoadState()
	m.weights = m.config.LoadWeights()
	m.now = m.config.Now()
}

func (m DashboardModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.refresh()
		case "m", "tab":
			m.metricIdx = (m.metricIdx + 1) % len(chartMetrics)
		case "w":
			m.windowIdx = (m.windowIdx + 1) % len(chartWindows)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.refresh()
		return m, tickCmd()
	}
	return m, nil
}

func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("FitTrack Dashboard"))
	b.WriteString("\n")
	b.WriteString(StyleSubtitle.Render(m.now.Format("Monday, January 2, 2006")))
	b.WriteString("\n\n")

	b.WriteString(m.summaryView())
	b.WriteString("\n")

	left := StylePanel.Render(m.workoutsView())
	right := StylePanel.Render(m.goalsView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	b.WriteString(StylePanel.Render(m.chartView()))
	b.WriteString("\n")

	b.WriteString(StyleHelp.Render("m: metric  w: window  r: refresh  q: quit"))
	return b.String()
}

// summaryView renders the current-week totals line.
func (m DashboardModel) summaryView() string {
	weekStart := m.now.AddDate(0, 0, -7)
	var count, minutes, calories int
	for _, w := range m.state.Workouts {
		if w.Date.Before(weekStart) {
			continue
		}
		count++
		minutes += w.Duration
		calories += w.Calories
	}
	active := 0
	for _, g := range m.state.Goals {
		if !g.Completed {
			active++
		}
	}

	parts := []string{
		fmt.Sprintf("%s workouts", StyleValue.Render(fmt.Sprintf("%d", count))),
		fmt.Sprintf("%s active", StyleValue.Render(output.FormatMinutes(minutes))),
		fmt.Sprintf("%s cal", StyleValue.Render(fmt.Sprintf("%d", calories))),
		fmt.Sprintf("%s goals", StyleValue.Render(fmt.Sprintf("%d", active))),
	}
	if latest, ok := m.weights.Latest(); ok {
		parts = append(parts,
			fmt.Sprintf("%s lbs", StyleValue.Render(output.FormatValue(latest.Weight))))
	}
	return StyleSubtitle.Render("This week: ") + strings.Join(parts, StyleMuted.Render("  |  "))
}

// workoutsView lists the five most recent workouts, newest first.
func (m DashboardModel) workoutsView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Recent Workouts"))
	b.WriteString("\n")

	workouts := append([]model.Workout(nil), m.state.Workouts...)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})
	if len(workouts) > 5 {
		workouts = workouts[:5]
	}
	if len(workouts) == 0 {
		b.WriteString(StyleMuted.Render("No workouts logged yet."))
		return b.String()
	}
	for _, w := range workouts {
		b.WriteString(fmt.Sprintf("%s  %-20s %s  %s\n",
			StyleMuted.Render(w.Date.Format(model.DateOnly)),
			truncate(w.Name, 20),
			StyleSubtitle.Render(string(w.Type)),
			output.FormatMinutes(w.Duration)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// goalsView lists active goals with progress bars, soonest deadline first.
func (m DashboardModel) goalsView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Goals"))
	b.WriteString("\n")

	goals := append([]model.Goal(nil), m.state.Goals...)
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].Completed != goals[j].Completed {
			return !goals[i].Completed
		}
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	if len(goals) > 5 {
		goals = goals[:5]
	}
	if len(goals) == 0 {
		b.WriteString(StyleMuted.Render("No goals set yet."))
		return b.String()
	}
	for _, g := range goals {
		g = g.Normalize()
		status := ""
		switch {
		case g.Completed:
			status = StyleSuccess.Render(" done")
		case g.DaysLeft(m.now) < 0:
			status = StyleError.Render(" overdue")
		case g.DaysLeft(m.now) <= 7:
			status = StyleWarning.Render(fmt.Sprintf(" %dd left", g.DaysLeft(m.now)))
		}
		b.WriteString(fmt.Sprintf("%-20s %s %3d%%%s\n",
			truncate(g.Name, 20),
			output.ProgressBar(g.Progress, 16),
			g.Progress,
			status))
	}
	return strings.TrimRight(b.String(), "\n")
}

// chartView renders the selected metric over the selected window.
func (m DashboardModel) chartView() string {
	metric := chartMetrics[m.metricIdx]
	window := chartWindows[m.windowIdx]

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Progress"))
	b.WriteString("  ")
	b.WriteString(StyleSubtitle.Render(fmt.Sprintf("%s / %s", metric.Label(), window)))
	b.WriteString("\n")

	points := timeseries.Aggregate(timeseries.Input{
		Workouts: m.state.Workouts,
		Weights:  m.weights.Entries,
	}, metric, window, m.now)
	c := chart.Build(points, metric.Label())
	if c == nil {
		b.WriteString(StyleMuted.Render("No data for this range yet."))
		return b.String()
	}

	width := m.width - 6
	if width < 40 {
		width = 40
	}
	b.WriteString(chart.RenderTerminal(c, width))

	if s, ok := chart.Summarize(points); ok {
		b.WriteString("\n")
		b.WriteString(StyleSubtitle.Render(fmt.Sprintf(
			"start %s  current %s  change %s  avg %s",
			output.FormatValue(s.First),
			output.FormatValue(s.Last),
			output.FormatChange(s.Change),
			output.FormatValue(s.Average))))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// Run starts the dashboard and blocks until the user quits.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboard(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
