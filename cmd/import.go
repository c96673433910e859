package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"fittrack/internal/errors"
	"fittrack/internal/store"
)

// importCmd restores a JSON backup produced by export.
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JSON backup",
	Long: `Restore a backup written by 'fittrack export'. The imported state
replaces the current workouts, goals, and weight log.

Example:
  fittrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading backup")
	}

	var b backup
	if err := json.Unmarshal(data, &b); err != nil {
		return errors.NewUserErrorWithField("file", args[0],
			"Backup file is not valid JSON",
			"Use a file written by 'fittrack export -o backup.json'")
	}

	ctx.Store.Dispatch(store.Initialize{
		Workouts:       b.State.Workouts,
		Goals:          b.State.Goals,
		CurrentWorkout: b.State.CurrentWorkout,
		Theme:          b.State.Theme,
	})
	if err := ctx.WeightRepo.Save(b.Weights); err != nil {
		return errors.Wrap(err, "restoring weight log")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":   "imported",
			"workouts": len(b.State.Workouts),
			"goals":    len(b.State.Goals),
			"weights":  len(b.Weights.Entries),
		})
	}
	ctx.CLIFormatter().Success("Imported " + args[0])
	return nil
}
