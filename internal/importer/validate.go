package importer

import (
	"fmt"
	"strconv"
	"strings"
)

var validRarities = map[string]bool{
	"": true, "common": true, "uncommon": true, "rare": true, "epic": true, "legendary": true,
}

// ValidateRoster checks parsed roster rows before conversion.
// Returns a slice of all validation errors found.
func ValidateRoster(rf *RosterFile) []error {
	var errs []error

	if len(rf.Rows) == 0 {
		errs = append(errs, fmt.Errorf("roster has no data rows"))
		return errs
	}

	seen := make(map[string]int) // lowercased name -> first line
	for _, row := range rf.Rows {
		if row.Name == "" {
			errs = append(errs, fmt.Errorf("line %d: name is required", row.Line))
			continue
		}

		key := strings.ToLower(row.Name)
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("line %d: duplicate officer %q (first seen on line %d)", row.Line, row.Name, first))
		} else {
			seen[key] = row.Line
		}

		if row.Level != "" {
			lvl, err := strconv.Atoi(row.Level)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: level %q is not a number", row.Line, row.Level))
			} else if lvl < 0 {
				errs = append(errs, fmt.Errorf("line %d: level must not be negative", row.Line))
			}
		}

		if !validRarities[strings.ToLower(row.Rarity)] {
			errs = append(errs, fmt.Errorf("line %d: invalid rarity %q", row.Line, row.Rarity))
		}
	}

	return errs
}
