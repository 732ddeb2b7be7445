// Package chart draws a dataset.Series as a labelled line chart.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Default canvas size, a 10x6 inch figure at 100 dpi.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

var (
	lineColor = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	gridColor = drawing.Color{R: 176, G: 176, B: 176, A: 255}
)

// Options controls the size and encoding of a rendered chart.
type Options struct {
	Width  int
	Height int
	Format Format
}

// DefaultOptions returns a 1000x600 PNG.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight, Format: FormatPNG}
}

// ParseFormat converts a user supplied format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be png or svg)", s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	return o
}

func (o Options) provider() (gochart.RendererProvider, error) {
	switch o.Format {
	case FormatPNG:
		return gochart.PNG, nil
	case FormatSVG:
		return gochart.SVG, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", o.Format)
	}
}

// Ticks returns one x-axis tick per year, labelled with the year.
func Ticks(s *dataset.Series) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, s.Len())
	for _, year := range s.Years() {
		ticks = append(ticks, gochart.Tick{Value: float64(year), Label: strconv.Itoa(year)})
	}
	return ticks
}

// Build assembles the chart for s without rendering it.
func Build(s *dataset.Series, opts Options) gochart.Chart {
	opts = opts.withDefaults()

	years := s.Years()
	xValues := make([]float64, len(years))
	gridLines := make([]gochart.GridLine, len(years))
	for i, year := range years {
		xValues[i] = float64(year)
		gridLines[i] = gochart.GridLine{Value: float64(year)}
	}

	gridStyle := gochart.Style{StrokeColor: gridColor, StrokeWidth: 1.0}

	graph := gochart.Chart{
		Title:  s.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           s.XLabel,
			Ticks:          Ticks(s),
			GridLines:      gridLines,
			GridMajorStyle: gridStyle,
		},
		YAxis: gochart.YAxis{
			Name:           s.YLabel,
			GridMajorStyle: gridStyle,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 1, 64)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name: s.Name,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2.0,
					DotColor:    lineColor,
					DotWidth:    5.0,
				},
				XValues: xValues,
				YValues: s.Values(),
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph
}

// Render validates s and writes the chart to w.
func Render(w io.Writer, s *dataset.Series, opts Options) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid series: %w", err)
	}

	opts = opts.withDefaults()
	rp, err := opts.provider()
	if err != nil {
		return err
	}

	graph := Build(s, opts)
	if err := graph.Render(rp, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderFile renders s to path. The file is written in place only after the
// chart renders successfully.
func RenderFile(path string, s *dataset.Series, opts Options) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".enrollchart-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := Render(tmp, s, opts); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write chart: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
