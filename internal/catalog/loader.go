package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"planrec/internal/model"
)

// Format selects the plan source encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the source format from the file extension.
// Everything that is not .yaml/.yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Warning describes one recoverable load problem. Entry carries the raw
// offending plan entry for per-entry skips and is empty for source-level
// problems.
type Warning struct {
	Reason string
	Entry  string
}

func (w Warning) String() string {
	if w.Entry == "" {
		return w.Reason
	}
	return fmt.Sprintf("skipping invalid plan entry %s: %s", w.Entry, w.Reason)
}

// Result is the outcome of loading a plan source: a best-effort catalog plus
// the warnings and informational notes produced along the way. Warnings and
// notes are never fatal.
type Result struct {
	Catalog  *Catalog
	Warnings []Warning
	Notes    []string
}

// Load reads and parses the plan source at path. A missing or unreadable
// file yields an empty catalog and a warning, not an error.
func Load(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{
			Catalog:  NewCatalog(),
			Warnings: []Warning{{Reason: fmt.Sprintf("plan source %q not found: %v", path, err)}},
		}
	}
	return Parse(data, FormatForPath(path))
}

// Parse validates a plan source document. Each entry is validated on its
// own: a malformed entry is skipped with a warning and the rest of the
// document still loads.
func Parse(data []byte, format Format) Result {
	entries, err := decodeDocument(data, format)
	if err != nil {
		return Result{
			Catalog:  NewCatalog(),
			Warnings: []Warning{{Reason: fmt.Sprintf("could not parse plan source: %v", err)}},
		}
	}

	res := Result{Catalog: NewCatalog()}
	for _, entry := range entries {
		plan, err := buildPlan(entry)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Reason: err.Error(),
				Entry:  rawEntry(entry),
			})
			continue
		}
		res.Catalog.Put(plan)
	}

	if n := res.Catalog.Len(); n < MinPlanCount {
		res.Notes = append(res.Notes,
			fmt.Sprintf("only %d valid plans loaded (expected at least %d); check the plan source", n, MinPlanCount))
	}
	return res
}

func decodeDocument(data []byte, format Format) ([]map[string]any, error) {
	var doc struct {
		Plans []map[string]any `json:"plans" yaml:"plans"`
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	}
	return doc.Plans, nil
}

// buildPlan coerces one raw entry into a Plan. Unknown fields are ignored;
// any missing or uncoercible required field fails the whole entry.
func buildPlan(entry map[string]any) (model.Plan, error) {
	var p model.Plan
	var err error

	if p.PlanCode, err = coerceString(entry, "plan_code"); err != nil {
		return model.Plan{}, err
	}
	if p.PlanCode == "" {
		return model.Plan{}, fmt.Errorf("plan_code: must be non-empty")
	}
	if p.Provider, err = coerceString(entry, "provider"); err != nil {
		return model.Plan{}, err
	}
	if p.PlanName, err = coerceString(entry, "plan_name"); err != nil {
		return model.Plan{}, err
	}
	if p.BaseCost, err = coerceDecimal(entry, "base_cost"); err != nil {
		return model.Plan{}, err
	}
	if p.IncludedMinutes, err = coerceInt(entry, "included_minutes"); err != nil {
		return model.Plan{}, err
	}
	if p.IncludedDataGB, err = coerceFloat(entry, "included_data_gb"); err != nil {
		return model.Plan{}, err
	}
	if p.CostPerMinute, err = coerceDecimal(entry, "cost_per_minute"); err != nil {
		return model.Plan{}, err
	}
	if p.CostPerGB, err = coerceDecimal(entry, "cost_per_gb"); err != nil {
		return model.Plan{}, err
	}
	if p.RoamingIncluded, err = coerceBool(entry, "roaming_included"); err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func rawEntry(entry map[string]any) string {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf("%v", entry)
	}
	return string(data)
}

func fieldValue(entry map[string]any, field string) (any, error) {
	v, ok := entry[field]
	if !ok {
		return nil, fmt.Errorf("%s: missing", field)
	}
	return v, nil
}

func coerceString(entry map[string]any, field string) (string, error) {
	v, err := fieldValue(entry, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", field, v)
	}
	return strings.TrimSpace(s), nil
}

// coerceFloat accepts numbers and numeric strings, rejecting negatives.
func coerceFloat(entry map[string]any, field string) (float64, error) {
	v, err := fieldValue(entry, field)
	if err != nil {
		return 0, err
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", field, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s: must be non-negative, got %v", field, f)
	}
	return f, nil
}

// coerceInt accepts integral numbers and integral numeric strings,
// rejecting negatives and fractional values.
func coerceInt(entry map[string]any, field string) (int64, error) {
	v, err := fieldValue(entry, field)
	if err != nil {
		return 0, err
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", field, err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: expected an integer, got %v", field, f)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s: must be non-negative, got %v", field, f)
	}
	return int64(f), nil
}

func coerceDecimal(entry map[string]any, field string) (decimal.Decimal, error) {
	v, err := fieldValue(entry, field)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %v", field, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: must be non-negative, got %s", field, d)
	}
	return d, nil
}

func coerceBool(entry map[string]any, field string) (bool, error) {
	v, err := fieldValue(entry, field)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected a boolean, got %T", field, v)
	}
	return b, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("cannot parse %q as a number", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("expected a number, got %T", v)
	}
}
