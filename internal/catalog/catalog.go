// Package catalog loads and validates the plan catalog from JSON or YAML
// plan source files.
package catalog

import "planrec/internal/model"

// MinPlanCount is the catalog size below which loading emits a sanity note.
// It is a soft check, not an enforced minimum.
const MinPlanCount = 5

// Catalog is the validated set of plans, keyed by plan code. Iteration order
// is the declaration order of the source document.
type Catalog struct {
	plans map[string]model.Plan
	order []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{plans: make(map[string]model.Plan)}
}

// Put inserts a plan. A duplicate code replaces the stored plan but keeps
// the position of its first declaration.
func (c *Catalog) Put(p model.Plan) {
	if _, seen := c.plans[p.PlanCode]; !seen {
		c.order = append(c.order, p.PlanCode)
	}
	c.plans[p.PlanCode] = p
}

// Get returns the plan for a code.
func (c *Catalog) Get(code string) (model.Plan, bool) {
	p, ok := c.plans[code]
	return p, ok
}

// Len returns the number of plans.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Codes returns plan codes in declaration order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Plans returns all plans in declaration order.
func (c *Catalog) Plans() []model.Plan {
	out := make([]model.Plan, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.plans[code])
	}
	return out
}
