package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/edupro/internal/config"
	"github.com/handiism/edupro/internal/logging"
	"github.com/handiism/edupro/internal/tui"
)

func main() {
	configFlag := flag.String("config", "edupro.json", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stderr, so log to the file only.
	logger, closeLog, err := logging.New(logging.Options{Path: settings.LogPath, Level: settings.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
