package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#2563EB") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleWorkout = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// WorkoutName formats a workout name.
func (c *CLIFormatter) WorkoutName(name string) string {
	if c.IsColorEnabled() {
		return styleWorkout.Render(name)
	}
	return name
}

// Note formats a free-text note.
func (c *CLIFormatter) Note(text string) string {
	if c.IsColorEnabled() {
		return styleNote.Render(text)
	}
	return text
}

// PrintWorkout prints one workout as a list row.
func (c *CLIFormatter) PrintWorkout(w model.Workout) {
	c.Printf("%s  %-28s %-12s %8s %8s kcal\n",
		FormatDate(w.Date),
		c.WorkoutName(w.Name),
		string(w.Type),
		FormatMinutes(w.Duration),
		fmt.Sprintf("%d", w.Calories))
	if w.Notes != "" {
		c.Println("            " + c.Note(w.Notes))
	}
}

// PrintGoal prints one goal as a list row with a progress bar.
func (c *CLIFormatter) PrintGoal(g model.Goal) {
	status := " "
	if g.Completed {
		status = "✓"
	}
	c.Printf("[%s] %-28s %-10s %s %3d%%  due %s\n",
		status,
		c.WorkoutName(g.Name),
		string(g.Category),
		ProgressBar(g.Progress, 20),
		g.Progress,
		FormatDate(g.TargetDate))
	if g.Description != "" {
		c.Println("    " + c.Note(g.Description))
	}
}

// ProgressBar renders a fixed-width text progress bar for 0-100.
func ProgressBar(progress, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
