package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/parser"
	"fittrack/internal/validate"
)

// Weight command flags.
var weightFlagDate string

// weightCmd represents the weight command group.
var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
	RunE:  runWeightList,
}

var weightLogCmd = &cobra.Command{
	Use:     "log WEIGHT",
	Aliases: []string{"add"},
	Short:   "Record a body-weight measurement",
	Long: `Record your weight for a date. A second measurement on the same
date replaces the first; the log keeps one entry per day, ordered by date.

Examples:
  fittrack weight log 178.5
  fittrack weight log 180 --date yesterday`,
	Args: cobra.ExactArgs(1),
	RunE: runWeightLog,
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries",
	RunE:  runWeightList,
}

func init() {
	weightLogCmd.Flags().StringVar(&weightFlagDate, "date", "", "Measurement date (default today)")

	weightCmd.AddCommand(weightLogCmd)
	weightCmd.AddCommand(weightListCmd)
	rootCmd.AddCommand(weightCmd)
}

func runWeightLog(cmd *cobra.Command, args []string) error {
	weight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidWeight, "'%s'", args[0])
	}
	if err := validate.Weight(weight); err != nil {
		return err
	}
	date, err := parser.ParseDate(weightFlagDate, time.Now())
	if err != nil {
		return err
	}

	log, err := ctx.WeightRepo.Record(model.WeightEntry{Date: date, Weight: weight})
	if err != nil {
		return errors.Wrap(err, "recording weight")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWeights(log)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Recorded " + output.FormatValue(weight) + " lbs on " + output.FormatDate(date))
	return nil
}

func runWeightList(cmd *cobra.Command, args []string) error {
	log := ctx.WeightRepo.Load()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWeights(log)
	}

	cli := ctx.CLIFormatter()
	if len(log.Entries) == 0 {
		cli.Muted("No weight entries yet. Use 'fittrack weight log' to add one.")
		return nil
	}
	cli.Title("Weight Log")
	cli.Println("")
	for _, e := range log.Entries {
		cli.Printf("%s  %6.1f lbs\n", output.FormatDate(e.Date), e.Weight)
	}
	return nil
}
