// Package config provides configuration file parsing for enrollchart.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dir returns the enrollchart config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/enrollchart if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "enrollchart"), nil
}

// Settings holds render defaults. Command-line flags take precedence.
type Settings struct {
	Width  int
	Height int
	Format string
	Output string
	Open   bool
}

// Defaults returns the settings used when no config file is present.
func Defaults() *Settings {
	return &Settings{
		Width:  1000,
		Height: 600,
		Format: "png",
		Output: "enrollment.png",
		Open:   false,
	}
}

// Load reads {dir}/config and overlays it on Defaults. A missing file is not
// an error. Lines are "key = value"; unknown keys, malformed lines and
// unparseable values are silently skipped.
func Load(dir string) (*Settings, error) {
	cfg := Defaults()

	f, err := os.Open(filepath.Join(dir, "config"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			continue
		}

		switch key {
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.Height = n
			}
		case "format":
			cfg.Format = strings.ToLower(value)
		case "output":
			cfg.Output = value
		case "open":
			if b, err := strconv.ParseBool(value); err == nil {
				cfg.Open = b
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
