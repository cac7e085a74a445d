// Package store persists usage profiles in an append-only SQLite log.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"planrec/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// createdAtLayout is the format SQLite's CURRENT_TIMESTAMP produces (UTC).
const createdAtLayout = "2006-01-02 15:04:05"

// Store is a handle on the usage database. Each operation opens its own
// connection and releases it before returning; nothing is held across calls.
type Store struct {
	path string
}

// New returns a store for the database at path. Nothing is opened yet;
// call Init before the first use.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*sql.DB, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening usage db: %w", err)
	}
	return db, nil
}

// Init idempotently creates the usage_details table. Safe to call on every
// run; existing data is never touched.
func (s *Store) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Append inserts a new usage record for the profile. The timestamp is
// assigned by the database at insertion time.
func (s *Store) Append(p model.UsageProfile) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	roaming := 0
	if p.RoamingRequired {
		roaming = 1
	}

	_, err = db.Exec(
		"INSERT INTO usage_details (person_name, minutes, data_gb, roaming_required) VALUES (?, ?, ?, ?)",
		p.PersonName, p.Minutes, p.DataGB, roaming,
	)
	if err != nil {
		return fmt.Errorf("saving usage: %w", err)
	}
	return nil
}

// Latest returns the most recently created record whose person_name matches
// exactly. The boolean is false when no record exists for the name; that is
// not an error.
func (s *Store) Latest(name string) (model.UsageRecord, bool, error) {
	db, err := s.open()
	if err != nil {
		return model.UsageRecord{}, false, err
	}
	defer func() { _ = db.Close() }()

	row := db.QueryRow(
		`SELECT id, person_name, minutes, data_gb, roaming_required, created_at
		 FROM usage_details
		 WHERE person_name = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`, name)

	var rec model.UsageRecord
	var roaming int
	var createdAt string
	err = row.Scan(&rec.ID, &rec.PersonName, &rec.Minutes, &rec.DataGB, &roaming, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UsageRecord{}, false, nil
	}
	if err != nil {
		return model.UsageRecord{}, false, fmt.Errorf("loading usage: %w", err)
	}

	rec.RoamingRequired = roaming != 0
	if ts, perr := time.Parse(createdAtLayout, createdAt); perr == nil {
		rec.CreatedAt = ts.UTC()
	}
	return rec, true, nil
}

// Stats aggregates the whole usage log across all people. An empty log
// yields a zero-Count result instead of averaging over nothing.
func (s *Store) Stats() (model.UsageStats, error) {
	db, err := s.open()
	if err != nil {
		return model.UsageStats{}, err
	}
	defer func() { _ = db.Close() }()

	row := db.QueryRow(
		`SELECT COUNT(*), AVG(minutes), AVG(data_gb),
		        MIN(minutes), MAX(minutes), MIN(data_gb), MAX(data_gb),
		        COALESCE(SUM(roaming_required), 0)
		 FROM usage_details`)

	var stats model.UsageStats
	var avgMin, avgGB sql.NullFloat64
	var minMin, maxMin sql.NullInt64
	var minGB, maxGB sql.NullFloat64
	var roamingCount int64

	err = row.Scan(&stats.Count, &avgMin, &avgGB, &minMin, &maxMin, &minGB, &maxGB, &roamingCount)
	if err != nil {
		return model.UsageStats{}, fmt.Errorf("aggregating usage: %w", err)
	}

	if stats.Count == 0 {
		return model.UsageStats{}, nil
	}

	stats.AvgMinutes = avgMin.Float64
	stats.AvgDataGB = avgGB.Float64
	stats.MinMinutes = minMin.Int64
	stats.MaxMinutes = maxMin.Int64
	stats.MinDataGB = minGB.Float64
	stats.MaxDataGB = maxGB.Float64
	stats.RoamingPct = float64(roamingCount) * 100 / float64(stats.Count)
	return stats, nil
}
