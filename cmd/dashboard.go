package cmd

import (
	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/tui"
)

// dashboardCmd launches the interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard showing this week's activity, recent
workouts, goal progress, and a chart of the selected metric.

Keys: m cycles the metric, w cycles the time window, r refreshes, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.DashboardConfig{
			LoadState: ctx.Store.State,
			LoadWeights: func() model.WeightLog {
				return ctx.WeightRepo.Load()
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
