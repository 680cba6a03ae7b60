package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoster_Valid(t *testing.T) {
	rf := &RosterFile{Rows: []RosterRow{
		{Line: 2, Name: "Khan", Rarity: "Epic", Level: "40"},
		{Line: 3, Name: "Chen", Rarity: "Common", Level: "12"},
	}}

	assert.Empty(t, ValidateRoster(rf))
}

func TestValidateRoster_CollectsAllErrors(t *testing.T) {
	rf := &RosterFile{Rows: []RosterRow{
		{Line: 2, Name: "", Level: "40"},
		{Line: 3, Name: "Khan", Level: "forty"},
		{Line: 4, Name: "Chen", Rarity: "Mythic"},
	}}

	errs := ValidateRoster(rf)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "line 2: name is required")
	assert.Contains(t, errs[1].Error(), "not a number")
	assert.Contains(t, errs[2].Error(), "invalid rarity")
}

func TestValidateRoster_DuplicateNames(t *testing.T) {
	rf := &RosterFile{Rows: []RosterRow{
		{Line: 2, Name: "Khan"},
		{Line: 3, Name: "khan"},
	}}

	errs := ValidateRoster(rf)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate officer")
	assert.Contains(t, errs[0].Error(), "first seen on line 2")
}

func TestValidateRoster_NegativeLevel(t *testing.T) {
	rf := &RosterFile{Rows: []RosterRow{
		{Line: 2, Name: "Khan", Level: "-5"},
	}}

	errs := ValidateRoster(rf)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "must not be negative")
}

func TestValidateRoster_NoRows(t *testing.T) {
	errs := ValidateRoster(&RosterFile{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no data rows")
}
