package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"planrec/internal/model"
	"planrec/internal/pricing"
)

func sampleReport() Report {
	planA := model.Plan{PlanCode: "A", Provider: "TelcoX", PlanName: "Saver", BaseCost: decimal.NewFromInt(30)}
	planB := model.Plan{PlanCode: "B", Provider: "TelcoY", PlanName: "Roamer", BaseCost: decimal.NewFromInt(55), RoamingIncluded: true}

	return Report{
		Profile: model.UsageProfile{PersonName: "Ana", Minutes: 100, DataGB: 5, RoamingRequired: true},
		Rows: []pricing.CostRow{
			{Code: "A", Plan: planA, Cost: decimal.NewFromInt(30), Eligible: false},
			{Code: "B", Plan: planB, Cost: decimal.NewFromInt(55), Eligible: true},
		},
		Recommendation: &pricing.Recommendation{Code: "B", Plan: planB, Cost: decimal.NewFromInt(55)},
		Currency:       "$",
		GeneratedAt:    time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, sampleReport()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("csv rows = %d, want header + 2", len(records))
	}
	if records[0][0] != "plan_code" {
		t.Errorf("header = %v", records[0])
	}

	// Row A: ineligible, not recommended.
	if records[1][3] != "30.00" || records[1][4] != "false" || records[1][5] != "false" {
		t.Errorf("row A = %v", records[1])
	}
	// Row B: eligible and recommended.
	if records[2][3] != "55.00" || records[2][4] != "true" || records[2][5] != "true" {
		t.Errorf("row B = %v", records[2])
	}
}

func TestWriteCSV_NoRecommendation(t *testing.T) {
	r := sampleReport()
	r.Recommendation = nil

	var b strings.Builder
	if err := WriteCSV(&b, r); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	for _, rec := range records[1:] {
		if rec[5] != "false" {
			t.Errorf("row %v marked recommended without a recommendation", rec)
		}
	}
}
