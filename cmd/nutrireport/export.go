package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/exitcode"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/export"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export-inactive",
	Short: "Export the inactive-patient roster CSV for outreach",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to session export (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Roster destination (default: pacientes_inactivos_<date>.csv)")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	report, _, code := runPipeline(cmd.Context())
	if code != exitcode.Success {
		os.Exit(code)
	}

	asOf, _ := cfg.AsOfTime()
	out := cfg.OutPath
	if out == "" {
		out = export.Filename(asOf)
	}

	if err := export.WriteRoster(out, report.InactivePatients, asOf); err != nil {
		log.Error().Err(err).Str("path", out).Msg("roster export failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Exported %d inactive patients to %s\n", len(report.InactivePatients), out)
	return nil
}
