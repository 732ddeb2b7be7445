package display

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func withCommand(t *testing.T, fn func(ctx context.Context, path string) *exec.Cmd) {
	t.Helper()
	old := Command
	Command = fn
	t.Cleanup(func() { Command = old })
}

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := os.WriteFile(path, []byte("\x89PNG"), 0644); err != nil {
		t.Fatalf("failed to write chart: %v", err)
	}
	return path
}

func TestViewerName(t *testing.T) {
	if got := viewerName("darwin"); got != "open" {
		t.Errorf("viewerName(darwin) = %q, want open", got)
	}
	if got := viewerName("linux"); got != "xdg-open" {
		t.Errorf("viewerName(linux) = %q, want xdg-open", got)
	}
}

func TestOpen(t *testing.T) {
	path := writeChart(t)

	var gotPath string
	withCommand(t, func(ctx context.Context, p string) *exec.Cmd {
		gotPath = p
		return exec.CommandContext(ctx, "true")
	})

	if err := Open(context.Background(), path); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if gotPath != path {
		t.Errorf("viewer called with %q, want %q", gotPath, path)
	}
}

func TestOpenMissingViewer(t *testing.T) {
	path := writeChart(t)

	withCommand(t, func(ctx context.Context, p string) *exec.Cmd {
		return exec.CommandContext(ctx, "enrollchart-no-such-viewer", p)
	})

	err := Open(context.Background(), path)
	if !errors.Is(err, ErrNoViewer) {
		t.Errorf("Open() error = %v, want ErrNoViewer", err)
	}
}

func TestOpenViewerFails(t *testing.T) {
	path := writeChart(t)

	withCommand(t, func(ctx context.Context, p string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	})

	if err := Open(context.Background(), path); err == nil {
		t.Error("Open() should fail when viewer exits non-zero")
	}
}

func TestOpenMissingFile(t *testing.T) {
	withCommand(t, func(ctx context.Context, p string) *exec.Cmd {
		t.Fatal("viewer should not run for a missing file")
		return nil
	})

	if err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Open() should fail for missing file")
	}
}
