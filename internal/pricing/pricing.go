// Package pricing computes monthly plan costs and picks the cheapest
// eligible plan for a usage profile.
package pricing

import (
	"github.com/shopspring/decimal"

	"planrec/internal/model"
)

// CostForUsage computes the monthly cost of a plan for the given usage:
// base cost plus overage minutes and overage data at the plan's per-unit
// rates. Pure and unrounded; rounding is a display concern.
//
// Negative minutes or dataGB are a caller error and are not validated here.
func CostForUsage(p model.Plan, minutes int64, dataGB float64) decimal.Decimal {
	cost := p.BaseCost

	if extra := minutes - p.IncludedMinutes; extra > 0 {
		cost = cost.Add(decimal.NewFromInt(extra).Mul(p.CostPerMinute))
	}
	if extra := dataGB - p.IncludedDataGB; extra > 0 {
		cost = cost.Add(decimal.NewFromFloat(extra).Mul(p.CostPerGB))
	}
	return cost
}

// Eligible reports whether a plan qualifies for a profile. The only rule is
// roaming: a profile that requires roaming excludes plans without it.
func Eligible(p model.Plan, u model.UsageProfile) bool {
	return !u.RoamingRequired || p.RoamingIncluded
}
