package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/config"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/exitcode"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "nutrireport",
	Short: "Session-export analytics for the nutrition practice",
	Long:  "Reads the agenda system's session export (XLSX, CSV or Parquet) and derives patient, revenue and retention metrics, plus the inactive-patient outreach roster.",
}

func init() {
	cfg.Columns = config.DefaultColumns()
	cfg.InactiveAfterMonths = 2

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.AsOf, "as-of", "", "Reference date YYYY-MM-DD (default: today)")
	pf.StringVar(&configPath, "config", "", "Optional YAML config (column labels, inactivity threshold)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
