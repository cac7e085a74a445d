package pricing

import (
	"github.com/shopspring/decimal"

	"planrec/internal/catalog"
	"planrec/internal/model"
)

// Recommendation is the cheapest eligible plan for a profile.
type Recommendation struct {
	Code string
	Plan model.Plan
	Cost decimal.Decimal
}

// Recommend scans the catalog for the minimum-cost plan eligible for the
// profile. A tie on cost is broken by catalog order: the first minimum wins.
// The second return is false when the catalog is empty or no plan meets the
// roaming requirement; that is a domain non-result, not an error.
func Recommend(c *catalog.Catalog, u model.UsageProfile) (Recommendation, bool) {
	var best Recommendation
	found := false

	for _, p := range c.Plans() {
		if !Eligible(p, u) {
			continue
		}
		cost := CostForUsage(p, u.Minutes, u.DataGB)
		if !found || cost.LessThan(best.Cost) {
			best = Recommendation{Code: p.PlanCode, Plan: p, Cost: cost}
			found = true
		}
	}
	return best, found
}

// CostRow is one line of the per-plan cost listing.
type CostRow struct {
	Code     string
	Plan     model.Plan
	Cost     decimal.Decimal
	Eligible bool
}

// CostTable prices every plan in the catalog for the profile, in catalog
// order. Ineligible plans are flagged, not filtered.
func CostTable(c *catalog.Catalog, u model.UsageProfile) []CostRow {
	rows := make([]CostRow, 0, c.Len())
	for _, p := range c.Plans() {
		rows = append(rows, CostRow{
			Code:     p.PlanCode,
			Plan:     p,
			Cost:     CostForUsage(p, u.Minutes, u.DataGB),
			Eligible: Eligible(p, u),
		})
	}
	return rows
}
