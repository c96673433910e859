package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/store"
	"fittrack/internal/validate"
)

// Log command flags.
var (
	logFlagType     string
	logFlagDuration int
	logFlagCalories int
	logFlagDate     string
	logFlagNotes    string
	logFlagExercise []string
	logFlagDraft    bool
)

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:     "log NAME",
	Aliases: []string{"l", "add"},
	Short:   "Log a workout",
	Long: `Log a workout with its type, duration, calories, and date.

Strength sessions can carry per-exercise set detail with --exercise,
repeated once per exercise, in NAME:WEIGHTxREPS form.

Examples:
  fittrack log "Morning Run" --type Cardio --duration 45 --calories 450
  fittrack log "Yoga" --type Flexibility --duration 30 --date yesterday
  fittrack log "Push Day" --type Strength --duration 60 \
      --exercise "Bench Press:100x5,105x5" --exercise "Overhead Press:60x8,60x8"`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logFlagType, "type", "t", "Other",
		"Workout type: Strength, Cardio, Flexibility, Balance, Sports, Other")
	logCmd.Flags().IntVarP(&logFlagDuration, "duration", "d", 0, "Duration in minutes (required)")
	logCmd.Flags().IntVarP(&logFlagCalories, "calories", "c", 0, "Calories burned")
	logCmd.Flags().StringVar(&logFlagDate, "date", "", "Workout date (default today)")
	logCmd.Flags().StringVarP(&logFlagNotes, "notes", "n", "", "Free-text notes")
	logCmd.Flags().StringArrayVarP(&logFlagExercise, "exercise", "e", nil,
		"Exercise with sets, NAME:WEIGHTxREPS[,WEIGHTxREPS...]")
	logCmd.Flags().BoolVar(&logFlagDraft, "draft", false,
		"Save as the in-progress workout instead of logging it")
	logCmd.MarkFlagRequired("duration")

	logCmd.RegisterFlagCompletionFunc("type", completeWorkoutTypes)

	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeName(args[0])

	// All form validation happens here, before anything reaches the store.
	if err := validate.Name(name); err != nil {
		return err
	}
	workoutType, err := validate.WorkoutType(logFlagType)
	if err != nil {
		return err
	}
	if err := validate.Duration(logFlagDuration); err != nil {
		return err
	}
	if err := validate.Calories(logFlagCalories); err != nil {
		return err
	}
	notes := validate.SanitizeNote(logFlagNotes)
	if err := validate.Note(notes); err != nil {
		return err
	}
	date, err := parser.ParseDate(logFlagDate, time.Now())
	if err != nil {
		return err
	}

	var exercises []model.Exercise
	for _, raw := range logFlagExercise {
		e, err := parser.ParseExercise(raw)
		if err != nil {
			return err
		}
		exercises = append(exercises, e)
	}

	workout := model.Workout{
		Name:      name,
		Type:      workoutType,
		Duration:  logFlagDuration,
		Calories:  logFlagCalories,
		Date:      date,
		Notes:     notes,
		Exercises: exercises,
	}

	if logFlagDraft {
		ctx.Store.Dispatch(store.SetCurrentWorkout{Workout: &workout})
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{"status": "draft_saved"})
		}
		ctx.CLIFormatter().Success("Draft saved: " + name)
		return nil
	}

	state := ctx.Store.Dispatch(store.AddWorkout{Workout: workout})
	added := state.Workouts[len(state.Workouts)-1]

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":  "logged",
			"workout": output.NewWorkoutOutput(added),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Logged " + name + " (" + strings.ToLower(string(workoutType)) + ")")
	cli.PrintWorkout(added)
	return nil
}

// completeWorkoutTypes offers workout type completions.
func completeWorkoutTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, t := range model.WorkoutTypes {
		out = append(out, string(t))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
