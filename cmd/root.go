// Package cmd provides the CLI commands for Fittrack.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/errors"
	"fittrack/internal/logging"
	"fittrack/internal/output"
	"fittrack/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "A command-line fitness tracker",
	Long: `Fittrack is a command-line fitness tracker. Log workouts, set goals,
record your body weight, and chart your progress - everything stays on
your machine.

Examples:
  fittrack log "Morning Run" --type Cardio --duration 45 --calories 450
  fittrack weight log 178.5
  fittrack chart --metric weight --window 30d
  fittrack goal add "Run a 10k" --category endurance --target-date 2026-12-01
  fittrack dashboard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show a summary of the current week
		return runStatus(cmd, args)
	},
}

// runStatus shows a summary of this week's activity.
func runStatus(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)

	var workouts, minutes, calories int
	for _, w := range state.Workouts {
		if w.Date.Before(weekAgo) {
			continue
		}
		workouts++
		minutes += w.Duration
		calories += w.Calories
	}

	var activeGoals int
	for _, g := range state.Goals {
		if !g.Completed {
			activeGoals++
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"week_workouts": workouts,
			"week_minutes":  minutes,
			"week_calories": calories,
			"active_goals":  activeGoals,
			"theme":         state.Theme,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("This Week")
	cli.Println("")
	cli.Printf("  Workouts:  %d\n", workouts)
	cli.Printf("  Time:      %s\n", output.FormatMinutes(minutes))
	cli.Printf("  Calories:  %d kcal\n", calories)
	cli.Printf("  Goals:     %d active\n", activeGoals)
	weightLog := ctx.WeightRepo.Load()
	if entry, ok := weightLog.Latest(); ok {
		cli.Printf("  Weight:    %.1f lbs (%s)\n", entry.Weight, output.FormatDate(entry.Date))
	}
	if workouts == 0 {
		cli.Println("")
		cli.Muted("No workouts this week. Log one with 'fittrack log'.")
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fittrack %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), errors.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + errors.FormatError(err) + "\n")
	}
	os.Exit(1)
}
