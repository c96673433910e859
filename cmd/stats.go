package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/chart"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/timeseries"
)

// Stats command flags.
var (
	statsFlagMetric string
	statsFlagWindow string
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat"},
	Short:   "Show summary statistics for a metric",
	Long: `Show first, latest, change, and average for a metric over a time
window - the numbers the chart displays, without the chart.

Examples:
  fittrack stats
  fittrack stats --metric calories --window 90d`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFlagMetric, "metric", "m", "weight",
		"Metric: weight, workouts, duration, calories")
	statsCmd.Flags().StringVarP(&statsFlagWindow, "window", "w", "30d",
		"Time window: 7d, 30d, 90d, 1y, all")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	metric, err := parser.ParseMetric(statsFlagMetric)
	if err != nil {
		return err
	}
	window, err := parser.ParseWindow(statsFlagWindow)
	if err != nil {
		return err
	}

	state := ctx.Store.State()
	points := timeseries.Aggregate(timeseries.Input{
		Workouts: state.Workouts,
		Weights:  ctx.WeightRepo.Load().Entries,
	}, metric, window, time.Now())

	summary, hasData := chart.Summarize(points)

	if ctx.IsJSON() {
		resp := output.ChartResponse{
			Metric: string(metric),
			Window: string(window),
			Points: points,
		}
		if hasData {
			resp.Summary = output.NewSummaryOutput(summary)
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Statistics: " + metric.Label())
	cli.Println("")
	if !hasData {
		cli.Muted("No data available for the selected period.")
		return nil
	}
	cli.Printf("  Points:   %d\n", len(points))
	cli.Printf("  First:    %s\n", output.FormatValue(summary.First))
	cli.Printf("  Latest:   %s\n", output.FormatValue(summary.Last))
	cli.Printf("  Change:   %s\n", output.FormatChange(summary.Change))
	cli.Printf("  Average:  %s\n", output.FormatValue(summary.Average))
	return nil
}
