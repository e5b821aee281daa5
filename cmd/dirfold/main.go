package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dirfold/dirfold"
	"gopkg.in/yaml.v3"
)

// excludePatterns is a repeatable CLI flag for exclude globs.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	// Parse CLI flags
	var targetDir string
	var format string
	var indexName string
	var indexProp bool
	var noRecurse bool
	var logLevel string
	var excludes excludePatterns

	flag.StringVar(&targetDir, "target", "", "Directory to aggregate (default: current working directory)")
	flag.Var(&excludes, "exclude", "Extra exclude pattern (repeatable)")
	flag.StringVar(&format, "format", "json", "Output format: json|yaml")
	flag.StringVar(&indexName, "index-name", dirfold.DefaultIndexName, "Basename treated as a directory's index unit")
	flag.BoolVar(&indexProp, "index-prop", false, "Keep index units under their own key instead of merging onto the directory")
	flag.BoolVar(&noRecurse, "no-recurse", false, "Do not descend into subdirectories")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.Parse()

	// Resolve target directory
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	targetDir, _ = filepath.Abs(targetDir)

	// Log to stderr only; stdout carries the aggregated output.
	logger := setupLogger(logLevel)

	logger.Info("aggregating directory",
		"target", targetDir,
		"indexName", indexName,
		"recurse", !noRecurse,
	)

	startTime := time.Now()

	mapping, err := dirfold.Aggregate(targetDir, &dirfold.Options{
		Recurse:   dirfold.Bool(!noRecurse),
		IndexProp: indexProp,
		IndexName: indexName,
		Exclude:   dirfold.ExcludeOptions{Files: excludes},
	})
	if err != nil {
		logger.Error("aggregation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("aggregation complete",
		"rootKeys", mapping.Len(),
		"duration", time.Since(startTime),
	)

	var output []byte
	switch strings.ToLower(format) {
	case "yaml", "yml":
		output, err = yaml.Marshal(mapping)
	default:
		output, err = json.MarshalIndent(mapping, "", "  ")
	}
	if err != nil {
		logger.Error("encoding result", "error", err)
		os.Exit(1)
	}
	if !strings.HasSuffix(string(output), "\n") {
		output = append(output, '\n')
	}

	os.Stdout.Write(output)
}

// setupLogger creates an slog.Logger writing to stderr.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
