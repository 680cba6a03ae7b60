package domain

import "time"

// ReferenceEntry is a single looked-up, provenance-tagged fact record.
type ReferenceEntry struct {
	ID         string
	Name       string
	Details    map[string]string
	Source     string
	ImportedAt time.Time
}

// GatedContext is the materialized result of applying a contract against
// live data sources. Block is nil when nothing was injected — never an
// empty wrapper.
type GatedContext struct {
	Block        *string
	InjectedKeys []string
	Entries      []ReferenceEntry
}
