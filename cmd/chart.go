package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fittrack/internal/chart"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/timeseries"
)

// Chart command flags.
var (
	chartFlagMetric   string
	chartFlagWindow   string
	chartFlagExercise string
	chartFlagOutput   string
)

// chartCmd represents the chart command.
var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"progress", "c"},
	Short:   "Chart your progress over time",
	Long: `Aggregate your records into a time series and draw it, either as
an SVG file or directly in the terminal.

Metrics:
  weight    body weight over time
  workouts  workouts per day
  duration  workout hours per day
  calories  calories burned per day

Examples:
  fittrack chart --metric weight --window 30d
  fittrack chart --metric calories --window 90d -o calories.svg
  fittrack chart --exercise "Bench Press" --window all`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartFlagMetric, "metric", "m", "weight",
		"Metric: weight, workouts, duration, calories")
	chartCmd.Flags().StringVarP(&chartFlagWindow, "window", "w", "30d",
		"Time window: 7d, 30d, 90d, 1y, all")
	chartCmd.Flags().StringVarP(&chartFlagExercise, "exercise", "e", "",
		"Chart one exercise's max set weight instead of a metric")
	chartCmd.Flags().StringVarP(&chartFlagOutput, "output", "o", "",
		"Write an SVG file instead of drawing in the terminal")

	chartCmd.RegisterFlagCompletionFunc("metric", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"weight", "workouts", "duration", "calories"}, cobra.ShellCompDirectiveNoFileComp
	})
	chartCmd.RegisterFlagCompletionFunc("window", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"7d", "30d", "90d", "1y", "all"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	window, err := parser.ParseWindow(chartFlagWindow)
	if err != nil {
		return err
	}

	now := time.Now()
	state := ctx.Store.State()

	var points []timeseries.Point
	var yLabel string
	metricName := chartFlagMetric
	if chartFlagExercise != "" {
		points = timeseries.ExerciseSeries(state.Workouts, chartFlagExercise, window, now)
		yLabel = "Max Weight (" + chartFlagExercise + ")"
		metricName = "exercise:" + chartFlagExercise
	} else {
		metric, err := parser.ParseMetric(chartFlagMetric)
		if err != nil {
			return err
		}
		points = timeseries.Aggregate(timeseries.Input{
			Workouts: state.Workouts,
			Weights:  ctx.WeightRepo.Load().Entries,
		}, metric, window, now)
		yLabel = metric.Label()
	}

	summary, hasData := chart.Summarize(points)

	if ctx.IsJSON() {
		resp := output.ChartResponse{
			Metric: metricName,
			Window: string(window),
			Points: points,
		}
		if hasData {
			resp.Summary = output.NewSummaryOutput(summary)
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if !hasData {
		cli.Muted("No data available for the selected period.")
		if chartFlagMetric == "weight" && chartFlagExercise == "" {
			cli.Muted("Start tracking your weight to see progress.")
		} else {
			cli.Muted("Log workouts to track your progress over time.")
		}
		return nil
	}

	c := chart.Build(points, yLabel)

	if chartFlagOutput != "" {
		f, err := os.Create(chartFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := chart.WriteSVG(f, c); err != nil {
			return err
		}
		cli.Success("Wrote " + chartFlagOutput)
	} else {
		cli.Print(chart.RenderTerminal(c, terminalWidth()))
	}

	cli.Println("")
	printSummary(cli, summary)
	return nil
}

// printSummary prints the chart's summary statistics.
func printSummary(cli *output.CLIFormatter, s chart.Summary) {
	cli.Printf("First: %s   Latest: %s   Change: %s   Average: %s\n",
		output.FormatValue(s.First),
		output.FormatValue(s.Last),
		output.FormatChange(s.Change),
		output.FormatValue(s.Average))
}

// terminalWidth returns the terminal width, defaulting to 80 when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
