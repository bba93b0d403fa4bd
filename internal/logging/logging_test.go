package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/edupro/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "platform.log")

	logger, closeFn, err := New(Options{Path: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_NoOutputs(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestAdapters(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	course, err := model.NewDesignCourse(model.Info{
		Title:     "UI",
		StartDate: model.Date(2024, time.January, 1),
		EndDate:   model.Date(2024, time.January, 2),
		Students:  []string{"anna", "boris"},
	}, nil)
	require.NoError(t, err)

	course.WithLogger(CourseLogger{Logger: logger}).WithNotifier(StudentNotifier{Logger: logger})
	course.LogAction("added")
	course.NotifyStudents("старт")

	out := buf.String()
	assert.Contains(t, out, "[LOG] added")
	assert.Contains(t, out, "course=UI")
	assert.Contains(t, out, "type=DesignCourse")
	assert.Contains(t, out, "Уведомление для anna: старт")
	assert.Contains(t, out, "Уведомление для boris: старт")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
