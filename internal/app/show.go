package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/output"
)

var (
	showSource sourceFlags

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the data points of a series",
		Example: `  # Print the built-in enrollment figures
  enrollchart show

  # Print an imported dataset
  enrollchart show --dataset fall`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}
)

func init() {
	showSource.register(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := showSource.load()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderPointsTable(s))
	return nil
}
