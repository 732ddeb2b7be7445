package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
	"github.com/blackwell-systems/enrollchart/internal/display"
	"github.com/blackwell-systems/enrollchart/internal/output"
	"github.com/blackwell-systems/enrollchart/internal/watcher"
)

var (
	watchOpts renderFlags

	watchCmd = &cobra.Command{
		Use:   "watch <file.csv>",
		Short: "Re-render the chart whenever a CSV file changes",
		Long: `Render the chart for a CSV file, then keep watching the file and
render again each time it is saved. Press Ctrl+C to stop.

A save that leaves the file unreadable or invalid is reported and the
previous image is kept.`,
		Example: `  # Watch fall.csv and write fall.png
  enrollchart watch fall.csv -o fall.png

  # Open the first render in the default viewer
  enrollchart watch fall.csv --open`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchOpts.register(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := watchOpts.resolve(cmd)
	if err != nil {
		return err
	}

	render := func(path string) error {
		s, err := dataset.LoadFile(path)
		if err != nil {
			return err
		}
		return renderSeries(cmd, s, target)
	}

	w, err := watcher.New(args[0], render)
	if err != nil {
		return err
	}
	defer w.Close()

	// The first render must succeed; later failures are only logged.
	if err := render(w.Path()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if target.open {
		if err := display.Open(ctx, target.path); err != nil {
			fmt.Fprintln(os.Stderr, output.Warning(err.Error()))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", args[0])
	return w.Run(ctx)
}
