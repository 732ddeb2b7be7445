package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/chart"
	"github.com/blackwell-systems/enrollchart/internal/config"
	"github.com/blackwell-systems/enrollchart/internal/dataset"
	"github.com/blackwell-systems/enrollchart/internal/display"
	"github.com/blackwell-systems/enrollchart/internal/output"
)

// renderFlags are the output flags shared by render and watch.
type renderFlags struct {
	output string
	format string
	width  int
	height int
	open   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default from config: enrollment.png)")
	cmd.Flags().StringVar(&f.format, "format", "", "image format: png or svg")
	cmd.Flags().IntVar(&f.width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "image height in pixels")
	cmd.Flags().BoolVar(&f.open, "open", false, "open the chart in the default viewer")
}

// renderTarget is a fully resolved render request.
type renderTarget struct {
	path string
	opts chart.Options
	open bool
}

// resolve merges the config file with flags set on cmd. Flags win.
func (f *renderFlags) resolve(cmd *cobra.Command) (renderTarget, error) {
	settings := config.Defaults()
	if dir, err := config.Dir(); err == nil {
		loaded, err := config.Load(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		} else {
			settings = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		settings.Width = f.width
	}
	if flags.Changed("height") {
		settings.Height = f.height
	}
	if flags.Changed("format") {
		settings.Format = f.format
	}
	if flags.Changed("open") {
		settings.Open = f.open
	}

	if settings.Width <= 0 || settings.Height <= 0 {
		return renderTarget{}, fmt.Errorf("invalid size %dx%d (must be positive)", settings.Width, settings.Height)
	}

	format, err := chart.ParseFormat(settings.Format)
	if err != nil {
		return renderTarget{}, err
	}

	path := settings.Output
	if flags.Changed("output") {
		path = f.output
	} else if ext := filepath.Ext(path); !strings.EqualFold(ext, format.Extension()) {
		path = strings.TrimSuffix(path, ext) + format.Extension()
	}
	if path == "" {
		return renderTarget{}, fmt.Errorf("output path cannot be empty")
	}

	return renderTarget{
		path: path,
		opts: chart.Options{Width: settings.Width, Height: settings.Height, Format: format},
		open: settings.Open,
	}, nil
}

var (
	renderSource sourceFlags
	renderOpts   renderFlags

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render the enrollment line chart to an image",
		Long: `Render a line chart of the selected series.

The chart has one line with point markers, a title, axis labels,
gridlines, a legend, and an x-axis tick at every year in the series.

Without --input or --dataset the built-in NCES enrollment figures are
used. Use --open to show the finished image in the default viewer.`,
		Example: `  # Render the built-in chart to enrollment.png
  enrollchart render

  # Render and display it
  enrollchart render --open

  # Render a CSV file as a wide SVG
  enrollchart render --input fall.csv --format svg --width 1600

  # Render an imported dataset
  enrollchart render --dataset fall -o fall.png`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}
)

func init() {
	renderSource.register(renderCmd)
	renderOpts.register(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	target, err := renderOpts.resolve(cmd)
	if err != nil {
		return err
	}

	s, err := renderSource.load()
	if err != nil {
		return err
	}

	if err := renderSeries(cmd, s, target); err != nil {
		return err
	}

	if target.open {
		if err := display.Open(cmd.Context(), target.path); err != nil {
			return err
		}
	}
	return nil
}

// renderSeries writes s to the target and reports where it went.
func renderSeries(cmd *cobra.Command, s *dataset.Series, target renderTarget) error {
	if err := chart.RenderFile(target.path, s, target.opts); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.Success(fmt.Sprintf("Wrote %s (%d points, %dx%d %s)",
		target.path, s.Len(), target.opts.Width, target.opts.Height, target.opts.Format)))
	return nil
}
