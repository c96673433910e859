package cmd

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/store"
	"fittrack/internal/validate"
)

// Workouts command flags.
var (
	workoutsFlagType string
	workoutsFlagSort string

	editFlagName     string
	editFlagType     string
	editFlagDuration int
	editFlagCalories int
	editFlagDate     string
	editFlagNotes    string
)

// workoutsCmd represents the workouts command group.
var workoutsCmd = &cobra.Command{
	Use:     "workouts",
	Aliases: []string{"workout", "w"},
	Short:   "Browse and manage logged workouts",
	RunE:    runWorkoutsList,
}

var workoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	Long: `List logged workouts, optionally filtered by type and sorted.

Examples:
  fittrack workouts list
  fittrack workouts list --type Cardio
  fittrack workouts list --sort duration`,
	RunE: runWorkoutsList,
}

var workoutsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one workout in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkoutsShow,
}

var workoutsEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a workout",
	Long: `Edit fields of a logged workout. Only the flags you pass change.

Examples:
  fittrack workouts edit 4c7e... --duration 50
  fittrack workouts edit 4c7e... --name "Evening Run" --calories 400`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkoutsEdit,
}

var workoutsDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE:    runWorkoutsDelete,
}

func init() {
	workoutsCmd.PersistentFlags().StringVarP(&workoutsFlagType, "type", "t", "",
		"Filter by workout type")
	workoutsCmd.PersistentFlags().StringVarP(&workoutsFlagSort, "sort", "s", "date",
		"Sort by: date, duration, calories")

	workoutsEditCmd.Flags().StringVar(&editFlagName, "name", "", "New name")
	workoutsEditCmd.Flags().StringVar(&editFlagType, "type", "", "New type")
	workoutsEditCmd.Flags().IntVar(&editFlagDuration, "duration", 0, "New duration in minutes")
	workoutsEditCmd.Flags().IntVar(&editFlagCalories, "calories", -1, "New calories")
	workoutsEditCmd.Flags().StringVar(&editFlagDate, "date", "", "New date")
	workoutsEditCmd.Flags().StringVar(&editFlagNotes, "notes", "", "New notes")

	workoutsCmd.RegisterFlagCompletionFunc("type", completeWorkoutTypes)
	workoutsShowCmd.ValidArgsFunction = completeWorkoutIDs
	workoutsEditCmd.ValidArgsFunction = completeWorkoutIDs
	workoutsDeleteCmd.ValidArgsFunction = completeWorkoutIDs

	workoutsCmd.AddCommand(workoutsListCmd)
	workoutsCmd.AddCommand(workoutsShowCmd)
	workoutsCmd.AddCommand(workoutsEditCmd)
	workoutsCmd.AddCommand(workoutsDeleteCmd)
	rootCmd.AddCommand(workoutsCmd)
}

func runWorkoutsList(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	workouts := state.Workouts

	if workoutsFlagType != "" {
		t, err := validate.WorkoutType(workoutsFlagType)
		if err != nil {
			return err
		}
		filtered := workouts[:0:0]
		for _, w := range workouts {
			if w.Type == t {
				filtered = append(filtered, w)
			}
		}
		workouts = filtered
	}

	sorted := append([]model.Workout(nil), workouts...)
	switch workoutsFlagSort {
	case "duration":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Duration > sorted[j].Duration })
	case "calories":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Calories > sorted[j].Calories })
	default:
		// Newest first
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWorkouts(sorted)
	}

	cli := ctx.CLIFormatter()
	if len(sorted) == 0 {
		cli.Muted("No workouts logged yet. Use 'fittrack log' to add one.")
		return nil
	}
	cli.Title("Workouts")
	cli.Println("")
	for _, w := range sorted {
		cli.PrintWorkout(w)
	}
	return nil
}

func runWorkoutsShow(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	w, ok := state.WorkoutByID(args[0])
	if !ok {
		return errors.ErrWorkoutNotFound
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewWorkoutOutput(w))
	}

	cli := ctx.CLIFormatter()
	cli.Title(w.Name)
	cli.Println("")
	cli.Printf("  ID:        %s\n", w.ID)
	cli.Printf("  Type:      %s\n", w.Type)
	cli.Printf("  Date:      %s\n", output.FormatDate(w.Date))
	cli.Printf("  Duration:  %s\n", output.FormatMinutes(w.Duration))
	cli.Printf("  Calories:  %d kcal\n", w.Calories)
	if w.Notes != "" {
		cli.Printf("  Notes:     %s\n", cli.Note(w.Notes))
	}
	for _, e := range w.Exercises {
		cli.Printf("  %s\n", cli.WorkoutName(e.Name))
		for i, s := range e.Sets {
			cli.Printf("    set %d: %.1f x %d\n", i+1, s.Weight, s.Reps)
		}
	}
	return nil
}

func runWorkoutsEdit(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	w, ok := state.WorkoutByID(args[0])
	if !ok {
		return errors.ErrWorkoutNotFound
	}

	if editFlagName != "" {
		name := validate.SanitizeName(editFlagName)
		if err := validate.Name(name); err != nil {
			return err
		}
		w.Name = name
	}
	if editFlagType != "" {
		t, err := validate.WorkoutType(editFlagType)
		if err != nil {
			return err
		}
		w.Type = t
	}
	if editFlagDuration != 0 {
		if err := validate.Duration(editFlagDuration); err != nil {
			return err
		}
		w.Duration = editFlagDuration
	}
	if editFlagCalories >= 0 {
		w.Calories = editFlagCalories
	}
	if editFlagDate != "" {
		date, err := parser.ParseDate(editFlagDate, time.Now())
		if err != nil {
			return err
		}
		w.Date = date
	}
	if cmd.Flags().Changed("notes") {
		notes := validate.SanitizeNote(editFlagNotes)
		if err := validate.Note(notes); err != nil {
			return err
		}
		w.Notes = notes
	}

	ctx.Store.Dispatch(store.UpdateWorkout{Workout: w})

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":  "updated",
			"workout": output.NewWorkoutOutput(w),
		})
	}
	ctx.CLIFormatter().Success("Updated " + w.Name)
	return nil
}

func runWorkoutsDelete(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	w, ok := state.WorkoutByID(args[0])
	if !ok {
		return errors.ErrWorkoutNotFound
	}

	ctx.Store.Dispatch(store.DeleteWorkout{ID: w.ID})

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "deleted", "id": w.ID})
	}
	ctx.CLIFormatter().Success("Deleted " + w.Name)
	return nil
}

// completeWorkoutIDs offers workout id completions with name hints.
func completeWorkoutIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, w := range ctx.Store.State().Workouts {
		out = append(out, w.ID+"\t"+w.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
