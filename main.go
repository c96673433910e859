// Fittrack - a command-line fitness tracker.
//
// Log workouts, set goals, record body weight, and chart your progress,
// all stored locally on your machine.
package main

import (
	"os"

	"fittrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
