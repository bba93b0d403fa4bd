// Package logging sets up the application logger and adapts it to the
// course capabilities in package model.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/edupro/internal/io"
	"github.com/handiism/edupro/internal/model"
)

// Options controls where log records go.
type Options struct {
	// Path is the log file. Empty disables file output.
	Path string

	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Stderr also writes records to standard error.
	Stderr bool
}

// New creates a text logger for opts. The returned close function releases
// the log file and is safe to call when no file was opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	var writers []io.Writer
	closeFn := func() error { return nil }

	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "." {
			if err := ioutils.EnsureDir(dir); err != nil {
				return nil, nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = f.Close
	}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(handler), closeFn, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CourseLogger records course actions.
type CourseLogger struct {
	Logger *slog.Logger
}

var _ model.ActionLogger = CourseLogger{}

// LogAction implements model.ActionLogger.
func (l CourseLogger) LogAction(course *model.Course, message string) {
	l.Logger.Info("[LOG] "+message,
		slog.String("course", course.Title()),
		slog.String("type", course.Kind().TypeName()),
	)
}

// StudentNotifier delivers student notifications by logging them.
type StudentNotifier struct {
	Logger *slog.Logger
}

var _ model.Notifier = StudentNotifier{}

// Notify implements model.Notifier.
func (n StudentNotifier) Notify(student, message string) {
	n.Logger.Info(fmt.Sprintf("Уведомление для %s: %s", student, message), slog.String("student", student))
}
