package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorLevel wraps a level name in its ANSI color.
func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// LogVerifySummary logs the found/missing/unexpected counts of a verify run.
// Missing exports raise the line to WARN.
func (cl *ConsoleLogger) LogVerifySummary(project string, found, missing, unexpected int) {
	level := "INFO"
	if missing > 0 {
		level = "WARN"
	}
	cl.logWithLevel(level, fmt.Sprintf("%s: %s", project, cl.formatCounts(found, missing, unexpected)))
}

// formatCounts renders the counts, green for found, red for missing and
// yellow for unexpected when color output is enabled. Zero counts other than
// found are left uncolored.
func (cl *ConsoleLogger) formatCounts(found, missing, unexpected int) string {
	parts := []string{
		cl.paint(color.FgGreen, found > 0, fmt.Sprintf("%d found", found)),
		cl.paint(color.FgRed, missing > 0, fmt.Sprintf("%d missing", missing)),
		cl.paint(color.FgYellow, unexpected > 0, fmt.Sprintf("%d unexpected", unexpected)),
	}
	return strings.Join(parts, ", ")
}

func (cl *ConsoleLogger) paint(attr color.Attribute, enabled bool, s string) string {
	if !cl.colorOutput || !enabled {
		return s
	}
	return color.New(attr).Sprint(s)
}
