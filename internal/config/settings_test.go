package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"platform_name":"Школа","top_count":5}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Школа", settings.PlatformName)
	assert.Equal(t, 5, settings.TopCount)
	assert.Equal(t, "courses.json", settings.SnapshotPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"snapshot_path":"from-file.json"}`), 0644))

	t.Setenv("EDUPRO_SNAPSHOT_PATH", "from-env.json")
	t.Setenv("EDUPRO_BACKUP_SNAPSHOT", "true")
	t.Setenv("EDUPRO_TOP_COUNT", "7")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", settings.SnapshotPath)
	assert.True(t, settings.BackupSnapshot)
	assert.Equal(t, 7, settings.TopCount)
}

func TestLoad_InvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("EDUPRO_TOP_COUNT", "many")
	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.UserRole = "student"
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettings_Address(t *testing.T) {
	assert.Equal(t, "Москва, Ленинградский пр., 10А", DefaultSettings().Address().String())
}
