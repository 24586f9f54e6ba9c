// finsight — financial metrics and valuation engine.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finsight/finsight/internal/config"
	"github.com/finsight/finsight/internal/engine"
	"github.com/finsight/finsight/internal/report"
	"github.com/finsight/finsight/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "finsight — financial metrics, valuation and risk analytics",
	Long: `finsight computes ~170 standardized financial metrics from a company
snapshot: ratio categories, DCF valuation, risk/return statistics and
technical indicators, with qualitative interpretations and composite
scores.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			cfg.Logging.Level = override
		}
		log = newLogger(cfg.Logging)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func newLogger(lc config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	if lc.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finsight %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [snapshot.json ...]",
	Short: "Analyze one or more company snapshots",
	Long: `Analyze reads company snapshot JSON files and prints a full metrics
report per snapshot. Missing snapshot fields surface as absent metrics
with neutral interpretations, never as errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots := make([]*models.Snapshot, 0, len(args))
		for _, path := range args {
			s, err := readSnapshot(path)
			if err != nil {
				return err
			}
			snapshots = append(snapshots, s)
		}

		eng := engine.New(cfg.Engine, log)
		reports, err := eng.AnalyzeBatch(cmd.Context(), snapshots)
		if err != nil {
			return err
		}

		rc := report.DefaultConfig()
		if cfg.Output.Format == "json" {
			rc.Format = report.FormatJSON
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			rc.Format = report.FormatJSON
		}

		for _, r := range reports {
			if err := report.Render(os.Stdout, r, rc); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "emit the full report as JSON")
}

func readSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	var s models.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &s, nil
}
