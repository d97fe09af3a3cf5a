package app

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/payflowhq/payflow/pkg/config"
)

// SetupLogger builds the process-wide slog.Logger backed by a styled
// charmbracelet handler.
func SetupLogger(cfg config.Log) *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(cfg.Level),
		ReportCaller:    cfg.ReportCaller,
		ReportTimestamp: true,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"})
	styles.Keys["status_code"] = lipgloss.NewStyle().Bold(true)
	handler.SetStyles(styles)

	return slog.New(handler)
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
