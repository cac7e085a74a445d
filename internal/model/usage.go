package model

import (
	"strings"
	"time"
)

// AnonymousName is the sentinel used when a profile is entered without a name.
const AnonymousName = "(Anonymous)"

// UsageProfile is a person's expected monthly usage.
type UsageProfile struct {
	PersonName      string
	Minutes         int64
	DataGB          float64
	RoamingRequired bool
}

// NewUsageProfile builds a profile, substituting the anonymous sentinel for
// a blank name.
func NewUsageProfile(name string, minutes int64, dataGB float64, roaming bool) UsageProfile {
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}
	return UsageProfile{
		PersonName:      name,
		Minutes:         minutes,
		DataGB:          dataGB,
		RoamingRequired: roaming,
	}
}

// UsageRecord is one persisted usage profile. ID and CreatedAt are assigned
// by the store.
type UsageRecord struct {
	ID              int64
	PersonName      string
	Minutes         int64
	DataGB          float64
	RoamingRequired bool
	CreatedAt       time.Time
}

// Profile returns the semantic profile carried by the record.
func (r UsageRecord) Profile() UsageProfile {
	return UsageProfile{
		PersonName:      r.PersonName,
		Minutes:         r.Minutes,
		DataGB:          r.DataGB,
		RoamingRequired: r.RoamingRequired,
	}
}

// UsageStats aggregates the whole usage log. Count == 0 is the distinguished
// empty result; the remaining fields are undefined in that case.
type UsageStats struct {
	Count      int64
	AvgMinutes float64
	AvgDataGB  float64
	MinMinutes int64
	MaxMinutes int64
	MinDataGB  float64
	MaxDataGB  float64
	RoamingPct float64
}
