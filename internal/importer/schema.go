package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RosterRow is one officer record parsed from a roster CSV export.
// Field values are kept as raw strings until validation.
type RosterRow struct {
	Line            int // 1-based line number in the source file
	Name            string
	Faction         string
	Rarity          string
	Level           string
	CaptainManeuver string
	OfficerAbility  string
}

// RosterFile is the parsed contents of a roster CSV.
type RosterFile struct {
	Source string // origin label, e.g. "csv:roster.csv" or "sheet:fleet-roster"
	Rows   []RosterRow
}

// Column headers recognized in roster exports. Matching is
// case-insensitive and ignores surrounding whitespace.
var headerAliases = map[string]string{
	"name":              "name",
	"officer":           "name",
	"officer name":      "name",
	"faction":           "faction",
	"rarity":            "rarity",
	"level":             "level",
	"lvl":               "level",
	"captain maneuver":  "captain_maneuver",
	"captain manoeuvre": "captain_maneuver",
	"officer ability":   "officer_ability",
	"ability":           "officer_ability",
}

// LoadRosterFile reads and parses a roster CSV from disk.
func LoadRosterFile(path string) (*RosterFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster file: %w", err)
	}
	defer f.Close()

	rf, err := ParseRoster(f)
	if err != nil {
		return nil, err
	}
	rf.Source = "csv:" + path
	return rf, nil
}

// ParseRoster parses roster CSV data from a reader. The first record
// must be a header row containing at least a name column.
func ParseRoster(r io.Reader) (*RosterFile, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // rows may omit trailing columns

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("roster file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading roster header: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := headerAliases[key]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("roster header has no name column (got %v)", header)
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rf := &RosterFile{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading roster line %d: %w", line, err)
		}

		rf.Rows = append(rf.Rows, RosterRow{
			Line:            line,
			Name:            field(record, "name"),
			Faction:         field(record, "faction"),
			Rarity:          field(record, "rarity"),
			Level:           field(record, "level"),
			CaptainManeuver: field(record, "captain_maneuver"),
			OfficerAbility:  field(record, "officer_ability"),
		})
	}

	return rf, nil
}
