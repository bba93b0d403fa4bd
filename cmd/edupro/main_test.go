package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/handiism/edupro/internal/approval"
	"github.com/handiism/edupro/internal/config"
	"github.com/handiism/edupro/internal/model"
	"github.com/handiism/edupro/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApprovals(t *testing.T) {
	var buf bytes.Buffer
	err := runApprovals(context.Background(), &buf, []string{"изменить материалы", "изменить структура", "прочее"}, 2)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "изменить материалы\t"+approval.DecisionInstructor, lines[0])
	assert.Equal(t, "изменить структура\t"+approval.DecisionMethodology, lines[1])
	assert.Equal(t, "прочее\t"+approval.DecisionManagement, lines[2])
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requests.txt")
	require.NoError(t, os.WriteFile(path, []byte("материалы\n\n  структура  \n"), 0644))

	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"материалы", "структура"}, lines)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = readLines(empty)
	assert.Error(t, err)

	_, err = readLines(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestListCourses(t *testing.T) {
	p := platform.New("EduPro", model.Address{City: "Москва", Street: "Ленинградский пр.", Building: "10А"})
	for _, tc := range []struct {
		title    string
		students []string
	}{
		{"A", []string{"x"}},
		{"B", []string{"x", "y"}},
	} {
		c, err := model.NewDesignCourse(model.Info{
			Title:      tc.title,
			StartDate:  model.Date(2024, time.January, 1),
			EndDate:    model.Date(2024, time.January, 11),
			Instructor: "Иванов",
			Students:   tc.students,
		}, nil)
		require.NoError(t, err)
		p.AddCourse(c)
	}

	var all bytes.Buffer
	listCourses(&all, p, 0)
	assert.Equal(t, "EduPro — Москва, Ленинградский пр., 10А\n"+
		"- Курс: A, Преподаватель: Иванов | 10 дн. | завершённость: 5\n"+
		"- Курс: B, Преподаватель: Иванов | 10 дн. | завершённость: 10\n", all.String())

	var top bytes.Buffer
	listCourses(&top, p, 1)
	assert.Contains(t, top.String(), "[Дизайн] B () — студентов: 2\n")
	assert.NotContains(t, top.String(), "[Дизайн] A")
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "✅ ", prefix(platform.LevelSuccess))
	assert.Equal(t, "   ", prefix(platform.LevelVerbose))
}

func writeConfig(t *testing.T) (string, *config.Settings) {
	t.Helper()
	dir := t.TempDir()
	settings := config.DefaultSettings()
	settings.LogPath = filepath.Join(dir, "platform.log")
	settings.SnapshotPath = filepath.Join(dir, "courses.json")
	path := filepath.Join(dir, "edupro.json")
	require.NoError(t, settings.Save(path))
	return path, settings
}

func TestRun_Request(t *testing.T) {
	cfg, settings := writeConfig(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfg, "-request", "изменить материалы"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "изменить материалы\t"+approval.DecisionInstructor+"\n", stdout.String())
	assert.FileExists(t, settings.LogPath)
}

func TestRun_SnapshotTop(t *testing.T) {
	cfg, settings := writeConfig(t)

	p := platform.New(settings.PlatformName, settings.Address())
	for i, title := range []string{"A", "B"} {
		c, err := model.NewProgrammingCourse(model.Info{
			Title:     title,
			StartDate: model.Date(2024, time.January, 1),
			EndDate:   model.Date(2024, time.January, 2),
			Students:  make([]string, i+1),
		}, nil)
		require.NoError(t, err)
		p.AddCourse(c)
	}
	require.NoError(t, p.SaveToFile(context.Background(), settings.SnapshotPath))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfg, "-top", "1"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "B () — студентов: 2")
	assert.NotContains(t, stdout.String(), "A ()")
	assert.Contains(t, stderr.String(), "Загружено курсов: 2")
}

func TestRun_Errors(t *testing.T) {
	cfg, _ := writeConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing snapshot", []string{"-config", cfg, "-snapshot", filepath.Join(t.TempDir(), "none.json")}},
		{"missing requests file", []string{"-config", cfg, "-requests", filepath.Join(t.TempDir(), "none.txt")}},
		{"unknown flag", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(tt.args, &stdout, &stderr))
		})
	}
}
