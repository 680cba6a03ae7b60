package domain

import (
	"strconv"
	"time"
)

// Officer is one roster record imported from a fleet spreadsheet export.
type Officer struct {
	ID              string
	Name            string
	Faction         string
	Rarity          string
	Level           int
	CaptainManeuver string
	OfficerAbility  string
	Source          string
	ImportedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReferenceEntry converts an officer into the provenance-tagged record
// shape the context gate injects.
func (o *Officer) ReferenceEntry() ReferenceEntry {
	details := map[string]string{}
	if o.Faction != "" {
		details["faction"] = o.Faction
	}
	if o.Rarity != "" {
		details["rarity"] = o.Rarity
	}
	if o.Level > 0 {
		details["level"] = strconv.Itoa(o.Level)
	}
	if o.CaptainManeuver != "" {
		details["captain_maneuver"] = o.CaptainManeuver
	}
	if o.OfficerAbility != "" {
		details["officer_ability"] = o.OfficerAbility
	}
	return ReferenceEntry{
		ID:         o.ID,
		Name:       o.Name,
		Details:    details,
		Source:     o.Source,
		ImportedAt: o.ImportedAt,
	}
}
