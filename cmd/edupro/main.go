package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/edupro/internal/approval"
	"github.com/handiism/edupro/internal/config"
	"github.com/handiism/edupro/internal/logging"
	"github.com/handiism/edupro/internal/model"
	"github.com/handiism/edupro/internal/platform"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes one command.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("edupro", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Command line flags
	var (
		configFlag   = fs.String("config", "edupro.json", "Path to config file")
		requestFlag  = fs.String("request", "", "Change request to route through the approval chain")
		requestsFlag = fs.String("requests", "", "File with one change request per line")
		snapshotFlag = fs.String("snapshot", "", "Snapshot file to list (default: snapshot_path from config)")
		topFlag      = fs.Int("top", 0, "Show the top N courses by students instead of all courses")
		verboseFlag  = fs.Bool("verbose", false, "Show verbose output")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := settings.LogLevel
	if *verboseFlag {
		level = "debug"
	}
	logger, closeLog, err := logging.New(logging.Options{Path: settings.LogPath, Level: level, Stderr: *verboseFlag})
	if err != nil {
		return err
	}
	defer closeLog()

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var requests []string
	if *requestFlag != "" {
		requests = append(requests, *requestFlag)
	}
	if *requestsFlag != "" {
		lines, err := readLines(*requestsFlag)
		if err != nil {
			return fmt.Errorf("reading requests: %w", err)
		}
		requests = append(requests, lines...)
	}

	if len(requests) > 0 {
		return runApprovals(ctx, stdout, requests, settings.ApprovalConcurrency)
	}

	path := *snapshotFlag
	if path == "" {
		path = settings.SnapshotPath
	}

	p := platform.New(settings.PlatformName, settings.Address(),
		platform.WithLogger(logger),
		platform.WithEvents(func(e platform.Event) {
			if e.Level == platform.LevelVerbose && !*verboseFlag {
				return
			}
			fmt.Fprintln(stderr, prefix(e.Level)+e.Message)
		}),
	)

	if _, err := p.LoadFromFile(ctx, path, model.DefaultRegistry()); err != nil {
		return err
	}

	listCourses(stdout, p, *topFlag)
	return nil
}

func prefix(level platform.EventLevel) string {
	switch level {
	case platform.LevelError:
		return "❌ "
	case platform.LevelWarning:
		return "⚠️  "
	case platform.LevelSuccess:
		return "✅ "
	case platform.LevelInfo:
		return "ℹ️  "
	default:
		return "   "
	}
}

// runApprovals routes every request through a fresh default chain and
// prints one decision per line in input order.
func runApprovals(ctx context.Context, w io.Writer, texts []string, limit int) error {
	requests := make([]approval.Request, len(texts))
	for i, text := range texts {
		requests[i] = approval.NewRequest(text)
	}

	results, err := approval.DefaultChain().HandleAll(ctx, requests, limit)
	if err != nil {
		return err
	}

	for i, res := range results {
		fmt.Fprintf(w, "%s\t%s\n", requests[i].Text, res.Decision)
	}
	return nil
}

// listCourses prints the catalog, or its top n courses when n > 0.
func listCourses(w io.Writer, p *platform.Platform, n int) {
	fmt.Fprintf(w, "%s — %s\n", p.Name(), p.Address())

	if n > 0 {
		for _, c := range p.TopCourses(n) {
			fmt.Fprintf(w, "%s — студентов: %d\n", c, len(c.Students()))
		}
		return
	}

	for _, c := range p.Courses() {
		fmt.Fprintf(w, "- %s | %d дн. | завершённость: %d\n", c.Summary(), c.Duration(), c.CompletionRate())
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("no requests in " + path)
	}
	return lines, nil
}
