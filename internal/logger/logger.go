// Package logger holds the process-wide structured logger.
//
// Logging is off until Init is called. The CLI logs text to stderr, or JSON
// to one file per day when a log directory is configured.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L = discard()

// Retention is how long dated log files are kept in a log directory.
const Retention = 30 * 24 * time.Hour

const (
	logPrefix = "numidium-"
	logSuffix = ".log"
	dayLayout = "2006-01-02"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool      // If false, all logging is discarded
	LogDir  string    // Directory for JSON log files. Empty logs text to Stderr
	Level   string    // debug, info, warn or error. Default: info
	Stderr  io.Writer // Destination when LogDir is empty. Default: os.Stderr
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Init replaces L according to opts. Files older than Retention are pruned
// from opts.LogDir before today's file is opened.
func Init(opts Options) error {
	if !opts.Enabled {
		L = discard()
		return nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.LogDir == "" {
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
		return nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return fmt.Errorf("logger: create log dir: %w", err)
	}
	now := time.Now()
	pruned := pruneLogs(opts.LogDir, now)

	path := filepath.Join(opts.LogDir, logFileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logger: open log file: %w", err)
	}

	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	if len(pruned) > 0 {
		L.Debug("pruned old log files", "dir", opts.LogDir, "files", pruned)
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logFileName names the log file written on day.
func logFileName(day time.Time) string {
	return logPrefix + day.Format(dayLayout) + logSuffix
}

// logFileDay recovers the day from a name made by logFileName.
func logFileDay(name string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, logPrefix)
	if !ok {
		return time.Time{}, false
	}
	day, ok := strings.CutSuffix(rest, logSuffix)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(dayLayout, day)
	return t, err == nil
}

// pruneLogs removes log files in dir dated more than Retention before now
// and returns the names it removed. Other files are left alone.
func pruneLogs(dir string, now time.Time) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	cutoff := now.Add(-Retention)
	var removed []string
	for _, entry := range entries {
		day, ok := logFileDay(entry.Name())
		if !ok || !day.Before(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(dir, entry.Name())) == nil {
			removed = append(removed, entry.Name())
		}
	}
	return removed
}

// Debug logs msg at debug level through L.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs msg at info level through L.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs msg at warn level through L.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
