package store

import (
	"math"
	"path/filepath"
	"testing"

	"planrec/internal/model"
)

// testStore creates an initialized store in a temp directory.
func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "usage_details.sqlite3"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func TestInit_Idempotent(t *testing.T) {
	s := testStore(t)

	if err := s.Append(model.UsageProfile{PersonName: "Ana", Minutes: 100, DataGB: 2}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// A second Init must not disturb existing data.
	if err := s.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Count != 1 {
		t.Errorf("record count after re-init = %d, want 1", stats.Count)
	}
}

func TestAppendAndLatest_RoundTrip(t *testing.T) {
	s := testStore(t)

	in := model.UsageProfile{PersonName: "Ben", Minutes: 420, DataGB: 13.75, RoamingRequired: true}
	if err := s.Append(in); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rec, found, err := s.Latest("Ben")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !found {
		t.Fatal("Latest found nothing for a just-appended name")
	}
	if got := rec.Profile(); got != in {
		t.Errorf("round-trip profile = %+v, want %+v", got, in)
	}
	if rec.ID == 0 {
		t.Error("record ID not assigned")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record CreatedAt not assigned")
	}
}

func TestLatest_UnknownName(t *testing.T) {
	s := testStore(t)

	_, found, err := s.Latest("nobody")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if found {
		t.Error("Latest found a record for an unknown name")
	}
}

func TestLatest_MostRecentWinsAndExactMatch(t *testing.T) {
	s := testStore(t)

	history := []model.UsageProfile{
		{PersonName: "Cho", Minutes: 100, DataGB: 1},
		{PersonName: "cho", Minutes: 999, DataGB: 99}, // different case, different person
		{PersonName: "Cho", Minutes: 250, DataGB: 4.5},
	}
	for _, p := range history {
		if err := s.Append(p); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	rec, found, err := s.Latest("Cho")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !found {
		t.Fatal("Latest found nothing")
	}
	if rec.Minutes != 250 {
		t.Errorf("Latest minutes = %d, want 250 (most recent for exact name)", rec.Minutes)
	}
}

func TestStats_EmptyStore(t *testing.T) {
	s := testStore(t)

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (model.UsageStats{}) {
		t.Errorf("empty store stats = %+v, want zero value", stats)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := testStore(t)

	records := []model.UsageProfile{
		{PersonName: "A", Minutes: 100, DataGB: 2, RoamingRequired: true},
		{PersonName: "B", Minutes: 300, DataGB: 10, RoamingRequired: false},
		{PersonName: "A", Minutes: 200, DataGB: 6, RoamingRequired: false},
		{PersonName: "C", Minutes: 400, DataGB: 2.5, RoamingRequired: true},
	}
	for _, p := range records {
		if err := s.Append(p); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if stats.AvgMinutes != 250 {
		t.Errorf("AvgMinutes = %v, want 250", stats.AvgMinutes)
	}
	if math.Abs(stats.AvgDataGB-5.125) > 1e-9 {
		t.Errorf("AvgDataGB = %v, want 5.125", stats.AvgDataGB)
	}
	if stats.MinMinutes != 100 || stats.MaxMinutes != 400 {
		t.Errorf("minutes range = %d-%d, want 100-400", stats.MinMinutes, stats.MaxMinutes)
	}
	if stats.MinDataGB != 2 || stats.MaxDataGB != 10 {
		t.Errorf("data range = %v-%v, want 2-10", stats.MinDataGB, stats.MaxDataGB)
	}
	if stats.RoamingPct != 50 {
		t.Errorf("RoamingPct = %v, want 50", stats.RoamingPct)
	}
}
