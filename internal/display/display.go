// Package display opens rendered charts in the platform's default viewer.
package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoViewer is returned when no viewer command is available.
var ErrNoViewer = errors.New("no image viewer found (install xdg-utils or pass --open=false)")

// Command builds the viewer invocation. Tests replace it.
var Command = func(ctx context.Context, path string) *exec.Cmd {
	return exec.CommandContext(ctx, viewerName(runtime.GOOS), path)
}

func viewerName(goos string) string {
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// Open shows the file at path and waits for the viewer command to return.
func Open(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	cmd := Command(ctx, path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrNoViewer
		}
		return fmt.Errorf("%s %s failed: %w (output: %s)", cmd.Path, path, err, string(output))
	}
	return nil
}
