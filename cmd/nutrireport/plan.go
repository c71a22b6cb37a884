package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/exitcode"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/fileread"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/logging"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/normalize"
)

const planSampleSize = 1000

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no report)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to session export (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}
	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	headers, rows, err := fileread.ReadRows(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file")
		os.Exit(exitcode.ReadError)
	}
	if err := fileread.ValidateColumns(headers, cfg.Columns); err != nil {
		log.Error().Err(err).Msg("column validation failed")
		os.Exit(exitcode.ValidationError)
	}

	// Sample rows to estimate data quality.
	sample := rows
	if len(sample) > planSampleSize {
		sample = sample[:planSampleSize]
	}
	var usable int
	patients := make(map[string]struct{})
	services := make(map[string]struct{})
	for _, row := range sample {
		s, ok := normalize.ToSession(row, cfg.Columns)
		if !ok {
			continue
		}
		usable++
		patients[s.PatientID] = struct{}{}
		if s.Service != "" {
			services[s.Service] = struct{}{}
		}
	}

	fmt.Println("=== nutrireport plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Total rows: %d\n", len(rows))
	fmt.Printf("Sampled:    %d rows\n", len(sample))
	fmt.Println()
	fmt.Printf("Usable sessions:  %d (%d rejected)\n", usable, len(sample)-usable)
	fmt.Printf("Distinct RUTs:    %d\n", len(patients))
	fmt.Printf("Distinct services: %d\n", len(services))
	fmt.Println("Column validation: OK")

	return nil
}
