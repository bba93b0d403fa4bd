package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	ioutils "github.com/handiism/edupro/internal/io"
	"github.com/handiism/edupro/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Platform identity
	PlatformName string `json:"platform_name" env:"EDUPRO_PLATFORM_NAME"`
	City         string `json:"city" env:"EDUPRO_CITY"`
	Street       string `json:"street" env:"EDUPRO_STREET"`
	Building     string `json:"building" env:"EDUPRO_BUILDING"`

	// Snapshot settings
	SnapshotPath   string `json:"snapshot_path" env:"EDUPRO_SNAPSHOT_PATH"`
	BackupSnapshot bool   `json:"backup_snapshot" env:"EDUPRO_BACKUP_SNAPSHOT"`

	// Logging
	LogPath  string `json:"log_path" env:"EDUPRO_LOG_PATH"`
	LogLevel string `json:"log_level" env:"EDUPRO_LOG_LEVEL"` // debug, info, warn, error

	// Listing
	TopCount int `json:"top_count" env:"EDUPRO_TOP_COUNT"`

	// Roles checked before the catalog is changed
	UserRole   string `json:"user_role" env:"EDUPRO_USER_ROLE"`
	EditorRole string `json:"editor_role" env:"EDUPRO_EDITOR_ROLE"`

	// Approval
	ApprovalConcurrency int `json:"approval_concurrency" env:"EDUPRO_APPROVAL_CONCURRENCY"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		PlatformName: "EduPro",
		City:         "Москва",
		Street:       "Ленинградский пр.",
		Building:     "10А",

		SnapshotPath:   "courses.json",
		BackupSnapshot: false,

		LogPath:  "platform.log",
		LogLevel: "info",

		TopCount: 3,

		UserRole:   "admin",
		EditorRole: "admin",

		ApprovalConcurrency: 4,
	}
}

// Load reads settings from a JSON file and applies EDUPRO_* environment
// overrides on top. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ApplyEnv overrides fields with the EDUPRO_* environment variables that are set.
func (s *Settings) ApplyEnv() error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Address returns the platform address.
func (s *Settings) Address() model.Address {
	return model.Address{
		City:     s.City,
		Street:   s.Street,
		Building: s.Building,
	}
}
