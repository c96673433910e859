package cmd

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/output"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagOutput string
)

// backup is the export file layout: the state snapshot plus the weight
// log, which lives outside the snapshot.
type backup struct {
	State   model.AppState  `json:"state"`
	Weights model.WeightLog `json:"weights"`
}

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"dump"},
	Short:   "Export your data",
	Long: `Export everything as a JSON backup, or workouts as CSV.

Examples:
  fittrack export -o backup.json
  fittrack export --format csv -o workouts.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Export format: json, csv")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	var w io.Writer = os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	state := ctx.Store.State()

	switch exportFlagFormat {
	case "csv":
		if err := writeWorkoutsCSV(w, state.Workouts); err != nil {
			return err
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(backup{
			State:   state,
			Weights: ctx.WeightRepo.Load(),
		}); err != nil {
			return err
		}
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		ctx.CLIFormatter().Success("Exported to " + exportFlagOutput)
	}
	return nil
}

// writeWorkoutsCSV writes workouts as CSV rows.
func writeWorkoutsCSV(w io.Writer, workouts []model.Workout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "type", "duration_minutes", "calories", "date", "notes"}); err != nil {
		return err
	}
	for _, wo := range workouts {
		row := []string{
			wo.ID,
			wo.Name,
			string(wo.Type),
			strconv.Itoa(wo.Duration),
			strconv.Itoa(wo.Calories),
			output.FormatDate(wo.Date),
			wo.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
