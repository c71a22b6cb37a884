package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/analyze"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/exitcode"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/export"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/logging"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline and print the report",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to session export (required)")
	f.StringVar(&cfg.JSONPath, "json", "", "Optional path for a JSON report artifact")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	report, _, code := runPipeline(cmd.Context())
	if code != exitcode.Success {
		os.Exit(code)
	}

	printReport(report)

	if cfg.JSONPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("marshal report")
			os.Exit(exitcode.ExportError)
		}
		if err := os.WriteFile(cfg.JSONPath, data, 0o644); err != nil {
			log.Error().Err(err).Msg("write json report")
			os.Exit(exitcode.ExportError)
		}
		log.Info().Str("path", cfg.JSONPath).Msg("json report written")
	}
	return nil
}

// runPipeline validates config, resolves as-of, and runs the analysis.
// Shared by analyze and export-inactive. Returns an exit code instead of an
// error so each command maps phases consistently.
func runPipeline(ctx context.Context) (*model.Report, *model.RunSummary, int) {
	log := logging.Setup(cfg.LogFormat)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config load failed")
			return nil, nil, exitcode.UsageError
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		return nil, nil, exitcode.UsageError
	}
	asOf, err := cfg.AsOfTime()
	if err != nil {
		log.Error().Err(err).Msg("invalid --as-of date")
		return nil, nil, exitcode.UsageError
	}
	if ctx == nil {
		ctx = context.Background()
	}

	report, summary, err := analyze.Run(ctx, log, &cfg, asOf)
	if err != nil {
		var pe *analyze.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("analysis failed")
			switch pe.Phase {
			case "validate":
				return nil, nil, exitcode.ValidationError
			case "read":
				return nil, nil, exitcode.ReadError
			default:
				return nil, nil, exitcode.AnalyzeError
			}
		}
		log.Error().Err(err).Msg("analysis failed")
		return nil, nil, exitcode.AnalyzeError
	}
	return report, summary, exitcode.Success
}

func printReport(r *model.Report) {
	fmt.Println("=== nutrireport ===")
	fmt.Printf("Pacientes:   %d (%d atenciones, %d este mes)\n",
		r.TotalPatients, r.TotalSessions, r.PatientsThisMonth)
	fmt.Printf("Ingresos:    $%s total, $%s por atención, $%s por paciente\n",
		export.FormatCLP(r.TotalRevenue),
		export.FormatCLP(r.AvgAmountPerSession),
		export.FormatCLP(r.AvgLifetimeSpendPerPatient))
	fmt.Printf("Retención:   %.1f%% (oportunidad %.1f%%)\n",
		r.RetentionRate, 100-r.RetentionRate)
	fmt.Printf("Inactivos:   %d pacientes\n", len(r.InactivePatients))

	fmt.Println("\nTendencia mensual:")
	for _, m := range r.Monthly {
		fmt.Printf("  %-7s %4d atenciones  %4d pacientes  $%s\n",
			m.Label, m.SessionCount, m.UniquePatients, export.FormatCLP(m.Revenue))
	}

	fmt.Println("\nServicios populares:")
	for _, s := range r.Services {
		fmt.Printf("  %-40s %4d citas  %4d pacientes  $%s\n",
			s.Name, s.Count, s.UniquePatients, export.FormatCLP(s.Revenue))
	}

	if len(r.Prices) > 0 {
		fmt.Println("\nPrecios frecuentes:")
		for _, p := range r.Prices {
			fmt.Printf("  $%-12s %4d atenciones (%.1f%%)\n",
				export.FormatCLP(p.Amount), p.Count, p.Percent)
		}
	}

	fmt.Println("\nMedios de pago:")
	for _, pm := range r.PaymentMethods {
		fmt.Printf("  %-20s %4d (%.1f%%)\n", pm.Method, pm.Count, pm.Percent)
	}
}
