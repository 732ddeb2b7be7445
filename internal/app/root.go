package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for enrollchart
	RootCmd = &cobra.Command{
		Use:   "enrollchart",
		Short: "Chart U.S. undergraduate enrollment over time",
		Long: `enrollchart draws a line chart of enrollment figures by year.

With no input it plots the NCES undergraduate enrollment series
(2000, 2010, 2021 and the 2030 projection). Other series can be read
from a "year,value" CSV file or imported into a local dataset store.

Render defaults are read from ~/.config/enrollchart/config:
  width = 1000
  height = 600
  format = png
  output = enrollment.png
  open = false

Examples:
  # Render the built-in chart and open it
  enrollchart render --open

  # Print the data points
  enrollchart show

  # Import a CSV and chart it as SVG
  enrollchart import fall.csv --name fall
  enrollchart render --dataset fall --format svg

  # Re-render whenever the CSV changes
  enrollchart watch fall.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "enrollchart: line charts of enrollment by year")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'enrollchart render' to draw the built-in chart.")
			fmt.Fprintln(out, "Run 'enrollchart --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.enrollchart/enrollchart.db)")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(renderCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".enrollchart")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create enrollchart directory: %w", err)
	}

	return filepath.Join(dir, "enrollchart.db"), nil
}
