// Package report exports the plan cost comparison to CSV and PDF.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"planrec/internal/model"
	"planrec/internal/pricing"
)

// Report collects everything a cost comparison export carries.
type Report struct {
	Profile        model.UsageProfile
	Rows           []pricing.CostRow
	Recommendation *pricing.Recommendation // nil when no plan is eligible
	Currency       string
	GeneratedAt    time.Time
}

func (r Report) money(d decimal.Decimal) string {
	return r.Currency + d.StringFixed(2)
}

// WriteCSV writes the cost table, one row per plan, followed by the
// recommendation if one exists.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	header := []string{"plan_code", "provider", "plan_name", "monthly_cost", "eligible", "recommended"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range r.Rows {
		recommended := r.Recommendation != nil && r.Recommendation.Code == row.Code
		record := []string{
			row.Code,
			row.Plan.Provider,
			row.Plan.PlanName,
			row.Cost.StringFixed(2),
			fmt.Sprintf("%t", row.Eligible),
			fmt.Sprintf("%t", recommended),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePDF renders the comparison as a single-page A4 report.
func WritePDF(path string, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, "Mobile Plan Cost Comparison")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Profile: %s  |  %d min/month, %.2f GB/month, roaming %s",
		r.Profile.PersonName, r.Profile.Minutes, r.Profile.DataGB,
		yesNo(r.Profile.RoamingRequired)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	// Table header
	colWidths := []float64{22, 35, 50, 30, 25, 28}
	headers := []string{"Code", "Provider", "Plan", "Monthly", "Eligible", "Recommended"}

	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	fill := false
	for _, row := range r.Rows {
		recommended := r.Recommendation != nil && r.Recommendation.Code == row.Code
		pdf.SetFillColor(245, 245, 245)
		cells := []string{
			row.Code,
			row.Plan.Provider,
			row.Plan.PlanName,
			r.money(row.Cost),
			yesNo(row.Eligible),
			yesNo(recommended),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	if r.Recommendation != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Recommended: %s (%s) at %s/month",
			r.Recommendation.Plan.FullName(), r.Recommendation.Code, r.money(r.Recommendation.Cost)))
	} else {
		pdf.Cell(0, 8, "No plan meets the roaming requirement of this profile.")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := pdf.Output(f); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
