package app

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/enrollchart/internal/display"
)

func TestRenderDefaultChart(t *testing.T) {
	dir := testEnv(t)
	out := filepath.Join(dir, "enrollment.png")
	writeConfig(t, "output = "+out+"\n")

	stdout, err := execute(t, context.Background(), "render")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
	if !strings.Contains(stdout, "Wrote "+out) || !strings.Contains(stdout, "4 points, 1000x600 png") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestRenderFormatSwapsDefaultExtension(t *testing.T) {
	dir := testEnv(t)
	writeConfig(t, "output = "+filepath.Join(dir, "chart.png")+"\n")

	if _, err := execute(t, context.Background(), "render", "--format", "svg"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "chart.svg")); err != nil {
		t.Errorf("expected chart.svg to be written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chart.png")); !os.IsNotExist(err) {
		t.Error("chart.png should not be written when format is svg")
	}
}

func TestRenderFlagsOverrideConfig(t *testing.T) {
	dir := testEnv(t)
	writeConfig(t, "width = 1600\nheight = 900\n")
	out := filepath.Join(dir, "explicit.img")

	stdout, err := execute(t, context.Background(), "render", "--width", "800", "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(stdout, "800x900") {
		t.Errorf("expected flag width with config height, got %q", stdout)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("explicit output path should be used as-is: %v", err)
	}
}

func TestRenderFromInput(t *testing.T) {
	dir := testEnv(t)
	csv := writeFile(t, dir, "fall.csv", "year,value\n1990,12.0\n2000,13.2\n")
	out := filepath.Join(dir, "fall.png")

	stdout, err := execute(t, context.Background(), "render", "--input", csv, "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(stdout, "2 points") {
		t.Errorf("expected 2 points, got %q", stdout)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := testEnv(t)
	bad := writeFile(t, dir, "bad.csv", "2010,1\n2000,2\n")
	out := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
	}{
		{"negative width", []string{"render", "--width", "-1", "-o", out}},
		{"unknown format", []string{"render", "--format", "gif", "-o", out}},
		{"input and dataset", []string{"render", "--input", bad, "--dataset", "x", "-o", out}},
		{"unordered input", []string{"render", "--input", bad, "-o", out}},
		{"missing input", []string{"render", "--input", filepath.Join(dir, "nope.csv"), "-o", out}},
		{"positional arg", []string{"render", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, context.Background(), tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("failed renders should not write output")
	}
}

func TestRenderOpen(t *testing.T) {
	dir := testEnv(t)
	out := filepath.Join(dir, "enrollment.png")

	var opened string
	old := display.Command
	display.Command = func(ctx context.Context, path string) *exec.Cmd {
		opened = path
		return exec.CommandContext(ctx, "true")
	}
	defer func() { display.Command = old }()

	if _, err := execute(t, context.Background(), "render", "-o", out, "--open"); err != nil {
		t.Fatalf("render --open failed: %v", err)
	}
	if opened != out {
		t.Errorf("viewer opened %q, want %q", opened, out)
	}
}
