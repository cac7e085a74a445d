package pricing

import (
	"testing"

	"planrec/internal/catalog"
	"planrec/internal/model"
)

func buildCatalog(plans ...model.Plan) *catalog.Catalog {
	c := catalog.NewCatalog()
	for _, p := range plans {
		c.Put(p)
	}
	return c
}

func TestRecommend_PicksCheapestEligible(t *testing.T) {
	c := buildCatalog(
		plan("A", 50, 300, 10, 0.3, 8, false),
		plan("B", 20, 300, 10, 0.3, 8, false),
		plan("C", 35, 300, 10, 0.3, 8, true),
	)
	u := model.UsageProfile{Minutes: 100, DataGB: 5}

	rec, ok := Recommend(c, u)
	if !ok {
		t.Fatal("Recommend returned no result")
	}
	if rec.Code != "B" {
		t.Errorf("recommended %s, want B", rec.Code)
	}
}

func TestRecommend_RoamingFilter(t *testing.T) {
	c := buildCatalog(
		plan("CHEAP", 10, 300, 10, 0.3, 8, false),
		plan("ROAM", 60, 300, 10, 0.3, 8, true),
	)
	u := model.UsageProfile{Minutes: 100, DataGB: 5, RoamingRequired: true}

	rec, ok := Recommend(c, u)
	if !ok {
		t.Fatal("Recommend returned no result")
	}
	if rec.Code != "ROAM" {
		t.Errorf("recommended %s, want ROAM (cheaper plan lacks roaming)", rec.Code)
	}
	if !rec.Plan.RoamingIncluded {
		t.Error("recommended a plan without required roaming")
	}
}

func TestRecommend_NoneEligible(t *testing.T) {
	c := buildCatalog(
		plan("A", 10, 300, 10, 0.3, 8, false),
		plan("B", 20, 300, 10, 0.3, 8, false),
	)
	u := model.UsageProfile{RoamingRequired: true}

	if _, ok := Recommend(c, u); ok {
		t.Error("Recommend found a plan despite all plans excluding roaming")
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	if _, ok := Recommend(catalog.NewCatalog(), model.UsageProfile{}); ok {
		t.Error("Recommend found a plan in an empty catalog")
	}
}

func TestRecommend_TieBreaksOnCatalogOrder(t *testing.T) {
	// B and A cost the same; B is declared first and must win.
	c := buildCatalog(
		plan("B", 30, 300, 10, 0.3, 8, false),
		plan("A", 30, 300, 10, 0.3, 8, false),
	)
	u := model.UsageProfile{Minutes: 100, DataGB: 5}

	rec, ok := Recommend(c, u)
	if !ok {
		t.Fatal("Recommend returned no result")
	}
	if rec.Code != "B" {
		t.Errorf("recommended %s, want B (first declared at minimal cost)", rec.Code)
	}
}

func TestCostTable_FlagsIneligibleWithoutFiltering(t *testing.T) {
	c := buildCatalog(
		plan("A", 30, 300, 10, 0.3, 8, true),
		plan("B", 20, 300, 10, 0.3, 8, false),
		plan("C", 40, 300, 10, 0.3, 8, true),
	)
	u := model.UsageProfile{Minutes: 100, DataGB: 5, RoamingRequired: true}

	rows := CostTable(c, u)
	if len(rows) != 3 {
		t.Fatalf("CostTable returned %d rows, want 3", len(rows))
	}

	wantOrder := []string{"A", "B", "C"}
	wantEligible := []bool{true, false, true}
	for i, row := range rows {
		if row.Code != wantOrder[i] {
			t.Errorf("row %d code = %s, want %s", i, row.Code, wantOrder[i])
		}
		if row.Eligible != wantEligible[i] {
			t.Errorf("row %d eligible = %v, want %v", i, row.Eligible, wantEligible[i])
		}
		want := CostForUsage(row.Plan, u.Minutes, u.DataGB)
		if !row.Cost.Equal(want) {
			t.Errorf("row %d cost = %s, want %s", i, row.Cost, want)
		}
	}
}
