package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
)

func TestTicksMatchYears(t *testing.T) {
	s := dataset.Enrollment()
	graph := Build(s, DefaultOptions())

	years := s.Years()
	ticks := graph.XAxis.Ticks
	if len(ticks) != len(years) {
		t.Fatalf("expected %d ticks, got %d", len(years), len(ticks))
	}
	for i, tick := range ticks {
		if tick.Value != float64(years[i]) {
			t.Errorf("tick %d value = %v, want %d", i, tick.Value, years[i])
		}
		if tick.Label != []string{"2000", "2010", "2021", "2030"}[i] {
			t.Errorf("tick %d label = %q", i, tick.Label)
		}
	}
}

func TestBuildLabels(t *testing.T) {
	graph := Build(dataset.Enrollment(), Options{})

	if graph.Title != "U.S. Undergraduate Enrollment (2000-2030)" {
		t.Errorf("unexpected title %q", graph.Title)
	}
	if graph.XAxis.Name != "Year" {
		t.Errorf("unexpected x label %q", graph.XAxis.Name)
	}
	if graph.YAxis.Name != "Enrollment (Millions)" {
		t.Errorf("unexpected y label %q", graph.YAxis.Name)
	}
	if graph.Width != DefaultWidth || graph.Height != DefaultHeight {
		t.Errorf("expected %dx%d canvas, got %dx%d", DefaultWidth, DefaultHeight, graph.Width, graph.Height)
	}
	if len(graph.Elements) != 1 {
		t.Errorf("expected a legend element, got %d elements", len(graph.Elements))
	}
	if len(graph.XAxis.GridLines) != 4 {
		t.Errorf("expected 4 x gridlines, got %d", len(graph.XAxis.GridLines))
	}

	if len(graph.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(graph.Series))
	}
	cs, ok := graph.Series[0].(gochart.ContinuousSeries)
	if !ok {
		t.Fatalf("expected ContinuousSeries, got %T", graph.Series[0])
	}
	if cs.Name != "Total Enrollment" {
		t.Errorf("unexpected legend label %q", cs.Name)
	}
	if cs.Style.DotWidth <= 0 {
		t.Error("expected point markers")
	}
	if len(cs.XValues) != len(cs.YValues) {
		t.Errorf("x/y length mismatch: %d vs %d", len(cs.XValues), len(cs.YValues))
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		marker []byte
	}{
		{name: "png", format: FormatPNG, marker: []byte("\x89PNG")},
		{name: "svg", format: FormatSVG, marker: []byte("<svg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, dataset.Enrollment(), Options{Format: tt.format})
			if err != nil {
				t.Fatalf("Render() failed: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), tt.marker) {
				t.Errorf("output does not contain %q", tt.marker)
			}
		})
	}
}

func TestRenderInvalidSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &dataset.Series{}, DefaultOptions())
	if err == nil {
		t.Fatal("Render() should fail for empty series")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got %d bytes", buf.Len())
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enrollment.png")

	if err := RenderFile(path, dataset.Enrollment(), DefaultOptions()); err != nil {
		t.Fatalf("RenderFile() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}

	// Failed renders leave no temp files behind.
	if err := RenderFile(filepath.Join(dir, "bad.png"), &dataset.Series{}, DefaultOptions()); err == nil {
		t.Error("RenderFile() should fail for empty series")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the rendered chart in %s, found %d entries", dir, len(entries))
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "png", want: FormatPNG},
		{in: "SVG", want: FormatSVG},
		{in: " png ", want: FormatPNG},
		{in: "jpg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !strings.HasPrefix(got.Extension(), ".") {
			t.Errorf("Extension() = %q, want leading dot", got.Extension())
		}
	}
}
