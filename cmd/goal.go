package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/store"
	"fittrack/internal/validate"
)

// Goal command flags.
var (
	goalAddFlagDescription string
	goalAddFlagCategory    string
	goalAddFlagTargetDate  string
	goalAddFlagTarget      float64
	goalAddFlagUnit        string
	goalAddFlagProgress    int

	goalEditFlagName        string
	goalEditFlagDescription string
	goalEditFlagCategory    string
	goalEditFlagTargetDate  string
	goalEditFlagProgress    int
	goalEditFlagCurrent     float64
)

// goalCmd represents the goal command group.
var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"goals", "g"},
	Short:   "Manage fitness goals",
	RunE:    runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a goal",
	Long: `Add a fitness goal with a category, target date, and optional
numeric target.

Examples:
  fittrack goal add "Run a 10k" --category endurance --target-date 2026-12-01
  fittrack goal add "Reach goal weight" --category weight --target 170 --unit lbs \
      --target-date "in 3 months"`,
	Args: cobra.ExactArgs(1),
	RunE: runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE:  runGoalList,
}

var goalEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalEdit,
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete ID",
	Short: "Toggle a goal's completion",
	Long: `Mark a goal completed, or un-complete it if it already is.
Completing a goal forces its progress to 100%.`,
	Args: cobra.ExactArgs(1),
	RunE: runGoalComplete,
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalDelete,
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalAddFlagDescription, "description", "d", "", "Goal description")
	goalAddCmd.Flags().StringVarP(&goalAddFlagCategory, "category", "c", "other",
		"Category: strength, endurance, weight, habit, nutrition, other")
	goalAddCmd.Flags().StringVar(&goalAddFlagTargetDate, "target-date", "", "Target date (required)")
	goalAddCmd.Flags().Float64Var(&goalAddFlagTarget, "target", 0, "Numeric target value")
	goalAddCmd.Flags().StringVar(&goalAddFlagUnit, "unit", "", "Unit for the target value")
	goalAddCmd.Flags().IntVar(&goalAddFlagProgress, "progress", 0, "Starting progress (0-100)")
	goalAddCmd.MarkFlagRequired("target-date")

	goalEditCmd.Flags().StringVar(&goalEditFlagName, "name", "", "New name")
	goalEditCmd.Flags().StringVar(&goalEditFlagDescription, "description", "", "New description")
	goalEditCmd.Flags().StringVar(&goalEditFlagCategory, "category", "", "New category")
	goalEditCmd.Flags().StringVar(&goalEditFlagTargetDate, "target-date", "", "New target date")
	goalEditCmd.Flags().IntVar(&goalEditFlagProgress, "progress", -1, "New progress (0-100)")
	goalEditCmd.Flags().Float64Var(&goalEditFlagCurrent, "current", -1, "New current value")

	goalAddCmd.RegisterFlagCompletionFunc("category", completeGoalCategories)
	goalEditCmd.RegisterFlagCompletionFunc("category", completeGoalCategories)
	goalEditCmd.ValidArgsFunction = completeGoalIDs
	goalCompleteCmd.ValidArgsFunction = completeGoalIDs
	goalDeleteCmd.ValidArgsFunction = completeGoalIDs

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalEditCmd)
	goalCmd.AddCommand(goalCompleteCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeName(args[0])
	if err := validate.Name(name); err != nil {
		return err
	}
	category, err := validate.GoalCategory(goalAddFlagCategory)
	if err != nil {
		return err
	}
	now := time.Now()
	targetDate, err := parser.ParseDate(goalAddFlagTargetDate, now)
	if err != nil {
		return err
	}
	if err := validate.TargetDate(targetDate, now); err != nil {
		return err
	}
	if err := validate.Progress(goalAddFlagProgress); err != nil {
		return err
	}
	description := validate.SanitizeNote(goalAddFlagDescription)
	if err := validate.Note(description); err != nil {
		return err
	}

	goal := model.Goal{
		Name:        name,
		Description: description,
		Category:    category,
		TargetDate:  targetDate,
		CreatedAt:   now,
		Progress:    goalAddFlagProgress,
		Target:      goalAddFlagTarget,
		Unit:        goalAddFlagUnit,
	}

	state := ctx.Store.Dispatch(store.AddGoal{Goal: goal})
	added := state.Goals[len(state.Goals)-1]

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "added",
			"goal":   output.NewGoalOutput(added),
		})
	}
	cli := ctx.CLIFormatter()
	cli.Success("Added goal: " + name)
	cli.PrintGoal(added)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintGoals(state.Goals)
	}

	cli := ctx.CLIFormatter()
	if len(state.Goals) == 0 {
		cli.Muted("No goals yet. Use 'fittrack goal add' to set one.")
		return nil
	}
	cli.Title("Goals")
	cli.Println("")
	for _, g := range state.Goals {
		cli.PrintGoal(g)
	}
	return nil
}

func runGoalEdit(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	g, ok := state.GoalByID(args[0])
	if !ok {
		return errors.ErrGoalNotFound
	}

	if goalEditFlagName != "" {
		name := validate.SanitizeName(goalEditFlagName)
		if err := validate.Name(name); err != nil {
			return err
		}
		g.Name = name
	}
	if cmd.Flags().Changed("description") {
		description := validate.SanitizeNote(goalEditFlagDescription)
		if err := validate.Note(description); err != nil {
			return err
		}
		g.Description = description
	}
	if goalEditFlagCategory != "" {
		category, err := validate.GoalCategory(goalEditFlagCategory)
		if err != nil {
			return err
		}
		g.Category = category
	}
	if goalEditFlagTargetDate != "" {
		now := time.Now()
		targetDate, err := parser.ParseDate(goalEditFlagTargetDate, now)
		if err != nil {
			return err
		}
		if err := validate.TargetDate(targetDate, now); err != nil {
			return err
		}
		g.TargetDate = targetDate
	}
	if goalEditFlagProgress >= 0 {
		if err := validate.Progress(goalEditFlagProgress); err != nil {
			return err
		}
		g.Progress = goalEditFlagProgress
	}
	if goalEditFlagCurrent >= 0 {
		g.CurrentValue = goalEditFlagCurrent
	}

	ctx.Store.Dispatch(store.UpdateGoal{Goal: g})

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "updated",
			"goal":   output.NewGoalOutput(g.Normalize()),
		})
	}
	ctx.CLIFormatter().Success("Updated " + g.Name)
	return nil
}

func runGoalComplete(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	g, ok := state.GoalByID(args[0])
	if !ok {
		return errors.ErrGoalNotFound
	}

	g.Completed = !g.Completed
	next := ctx.Store.Dispatch(store.UpdateGoal{Goal: g})
	updated, _ := next.GoalByID(g.ID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "updated",
			"goal":   output.NewGoalOutput(updated),
		})
	}
	cli := ctx.CLIFormatter()
	if updated.Completed {
		cli.Success("Completed " + updated.Name)
	} else {
		cli.Success("Reopened " + updated.Name)
	}
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
	state := ctx.Store.State()
	g, ok := state.GoalByID(args[0])
	if !ok {
		return errors.ErrGoalNotFound
	}

	ctx.Store.Dispatch(store.DeleteGoal{ID: g.ID})

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "deleted", "id": g.ID})
	}
	ctx.CLIFormatter().Success("Deleted " + g.Name)
	return nil
}

// completeGoalCategories offers goal category completions.
func completeGoalCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, c := range model.GoalCategories {
		out = append(out, string(c))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeGoalIDs offers goal id completions with name hints.
func completeGoalIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, g := range ctx.Store.State().Goals {
		out = append(out, g.ID+"\t"+g.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
