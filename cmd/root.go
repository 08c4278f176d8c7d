// Package cmd provides CLI commands for drumcurate.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/config"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var configFile string

var rootCmd = &cobra.Command{
	Use:   "drumcurate",
	Short: "Generate curation documents for DRUM datasets",
	Long: `drumcurate builds the documents a curator needs for a dataset deposited
in the Data Repository for the University of Minnesota (DRUM).

Item metadata and the file list are read from the repository's REST API
(or from saved JSON) and rendered as a README template for the depositor,
a curation log and a DataCite XML record for DOI registration.

Examples:
  drumcurate generate all --handle https://hdl.handle.net/11299/220269 --dir out
  drumcurate generate readme --metadata metadata.json --bitstreams bitstreams.json
  drumcurate inspect --handle 11299/220269
  drumcurate check --handle 11299/220269
  drumcurate serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given, otherwise ~/.drumcurate/config.yaml.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.LoadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	return config.Load()
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.drumcurate/config.yaml)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
