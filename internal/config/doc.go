// Package config provides configuration management for edupro.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - EDUPRO_* environment variable overrides
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Platform "EduPro", snapshot in courses.json, log in platform.log
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Environment variables win over the file, for example
// EDUPRO_SNAPSHOT_PATH=/tmp/courses.json.
//
// # Saving Settings
//
//	settings.SnapshotPath = "/data/courses.json"
//	err := settings.Save("/path/to/config.json")
package config
