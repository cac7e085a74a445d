package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"planrec/internal/pricing"
	"planrec/internal/report"
)

var (
	flagReportFormat string
	flagReportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the cost comparison for a usage profile",
	RunE:  runReport,
}

func init() {
	addProfileFlags(reportCmd)
	reportCmd.Flags().StringVar(&flagReportFormat, "format", "csv", "Output format: csv or pdf")
	reportCmd.Flags().StringVarP(&flagReportOut, "output", "o", "", "Output file (default plan_report.<format>)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	profile, err := resolveProfile(e, cmd)
	if err != nil {
		return err
	}
	if e.cat.Len() == 0 {
		return fmt.Errorf("no plans loaded; nothing to report")
	}

	r := report.Report{
		Profile:     profile,
		Rows:        pricing.CostTable(e.cat, profile),
		Currency:    e.cfg.General.Currency,
		GeneratedAt: time.Now(),
	}
	if rec, ok := pricing.Recommend(e.cat, profile); ok {
		r.Recommendation = &rec
	}

	out := flagReportOut
	if out == "" {
		out = "plan_report." + flagReportFormat
	}

	switch flagReportFormat {
	case "csv":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := report.WriteCSV(f, r); err != nil {
			return err
		}
	case "pdf":
		if err := report.WritePDF(out, r); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown report format %q (use csv or pdf)", flagReportFormat)
	}

	fmt.Printf("Report written to %s\n", out)
	return nil
}
