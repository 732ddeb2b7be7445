// Package output provides terminal output utilities for enrollchart.
//
// Tables are plain ASCII with a box-drawing rule under the header. Color is
// only emitted when stdout is a terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
	"github.com/blackwell-systems/enrollchart/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// Success formats a completion message, green on a terminal.
func Success(msg string) string {
	return colorize(colorGreen, "✓ "+msg)
}

// Warning formats a warning message, yellow on a terminal.
func Warning(msg string) string {
	return colorize(colorYellow, "⚠ "+msg)
}

// RenderPointsTable renders the points of a series under its title.
func RenderPointsTable(s *dataset.Series) string {
	if s == nil || len(s.Points) == 0 {
		return "No data points.\n"
	}

	yHeader := s.YLabel
	if yHeader == "" {
		yHeader = "Value"
	}
	xHeader := s.XLabel
	if xHeader == "" {
		xHeader = "Year"
	}

	var sb strings.Builder
	if s.Title != "" {
		sb.WriteString(s.Title)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("%-8s %s\n", truncate(xHeader, 8), yHeader))
	sb.WriteString(strings.Repeat("─", 9+len([]rune(yHeader))))
	sb.WriteString("\n")

	for _, p := range s.Points {
		sb.WriteString(fmt.Sprintf("%-8d %s\n", p.Year, strconv.FormatFloat(p.Value, 'f', -1, 64)))
	}

	sb.WriteString(colorize(colorGray, fmt.Sprintf("\n%d points, %s\n", len(s.Points), s.Name)))
	return sb.String()
}

// RenderDatasetTable renders stored dataset summaries.
func RenderDatasetTable(infos []store.DatasetInfo) string {
	if len(infos) == 0 {
		return "No datasets found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %-7s %-11s %-14s %s\n", "Name", "Points", "Years", "Imported", "Title"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	for _, info := range infos {
		years := fmt.Sprintf("%d-%d", info.FirstYear, info.LastYear)
		if info.PointCount == 0 {
			years = "-"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-7d %-11s %-14s %s\n",
			truncate(info.Name, 20),
			info.PointCount,
			years,
			formatRelativeTime(info.CreatedAt),
			truncate(info.Title, 40)))
	}

	return sb.String()
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	default:
		return t.Format("2006-01-02")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
