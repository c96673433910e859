package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/seed"
	"fittrack/internal/store"
)

// Seed command flags.
var (
	seedFlagWorkouts int
	seedFlagDays     int
	seedFlagSeed     int64
)

// seedCmd fills the tracker with demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo data",
	Long: `Fill the tracker with plausible demo workouts, goals, and weight
entries so charts have something to show. Intended for trying Fittrack
out; existing records are kept.

Examples:
  fittrack seed
  fittrack seed --workouts 50 --days 120`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedFlagWorkouts, "workouts", 20, "Number of workouts to generate")
	seedCmd.Flags().IntVar(&seedFlagDays, "days", 60, "Spread records over this many past days")
	seedCmd.Flags().Int64Var(&seedFlagSeed, "seed", 0, "Random seed for reproducible data")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	res := seed.Generate(seed.Options{
		Workouts: seedFlagWorkouts,
		Days:     seedFlagDays,
		Seed:     seedFlagSeed,
	}, time.Now())

	for _, w := range res.Workouts {
		ctx.Store.Dispatch(store.AddWorkout{Workout: w})
	}
	for _, g := range res.Goals {
		ctx.Store.Dispatch(store.AddGoal{Goal: g})
	}
	for _, e := range res.Weights {
		if _, err := ctx.WeightRepo.Record(e); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":   "seeded",
			"workouts": len(res.Workouts),
			"goals":    len(res.Goals),
			"weights":  len(res.Weights),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Seeded demo data")
	cli.Printf("  %d workouts, %d goals, %d weight entries\n",
		len(res.Workouts), len(res.Goals), len(res.Weights))
	return nil
}
