package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoster = `Officer Name,Faction,Rarity,Level,Captain Maneuver,Officer Ability
Khan,Augment,Epic,40,Increases crit chance,Bleeds the target
Chen,Federation,Common,12,Reduces damage,Shield boost
`

func TestParseRoster_HeaderMapping(t *testing.T) {
	rf, err := ParseRoster(strings.NewReader(sampleRoster))
	require.NoError(t, err)
	require.Len(t, rf.Rows, 2)

	khan := rf.Rows[0]
	assert.Equal(t, 2, khan.Line)
	assert.Equal(t, "Khan", khan.Name)
	assert.Equal(t, "Augment", khan.Faction)
	assert.Equal(t, "Epic", khan.Rarity)
	assert.Equal(t, "40", khan.Level)
	assert.Equal(t, "Increases crit chance", khan.CaptainManeuver)
	assert.Equal(t, "Bleeds the target", khan.OfficerAbility)
}

func TestParseRoster_AliasHeaders(t *testing.T) {
	csv := "officer,lvl,ability\nSpock,25,Logic bonus\n"
	rf, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rf.Rows, 1)
	assert.Equal(t, "Spock", rf.Rows[0].Name)
	assert.Equal(t, "25", rf.Rows[0].Level)
	assert.Equal(t, "Logic bonus", rf.Rows[0].OfficerAbility)
}

func TestParseRoster_ShortRows(t *testing.T) {
	csv := "Name,Faction,Level\nKhan\n"
	rf, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rf.Rows, 1)
	assert.Equal(t, "Khan", rf.Rows[0].Name)
	assert.Empty(t, rf.Rows[0].Faction)
}

func TestParseRoster_MissingNameColumn(t *testing.T) {
	_, err := ParseRoster(strings.NewReader("Faction,Level\nAugment,40\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name column")
}

func TestParseRoster_Empty(t *testing.T) {
	_, err := ParseRoster(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
