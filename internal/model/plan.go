// Package model defines domain types for plans, usage profiles, and stats.
package model

import "github.com/shopspring/decimal"

// Plan is one priced mobile offering from the catalog.
type Plan struct {
	PlanCode        string
	Provider        string
	PlanName        string
	BaseCost        decimal.Decimal
	IncludedMinutes int64
	IncludedDataGB  float64
	CostPerMinute   decimal.Decimal
	CostPerGB       decimal.Decimal
	RoamingIncluded bool
}

// FullName returns the display name "Provider - PlanName".
func (p Plan) FullName() string {
	return p.Provider + " - " + p.PlanName
}
