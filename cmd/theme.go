package cmd

import (
	"github.com/spf13/cobra"

	"fittrack/internal/store"
)

// themeCmd toggles the color theme preference.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between light and dark theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := ctx.Store.Dispatch(store.ToggleTheme{})

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{"theme": state.Theme})
		}
		ctx.CLIFormatter().Success("Theme is now " + string(state.Theme))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
