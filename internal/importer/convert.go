package importer

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Guffawaffle/majel/internal/domain"
)

// Convert transforms validated roster rows into domain officers ready
// for persistence. Call ValidateRoster first; Convert assumes the
// roster is valid.
func Convert(rf *RosterFile) []*domain.Officer {
	now := time.Now().UTC()

	officers := make([]*domain.Officer, 0, len(rf.Rows))
	for _, row := range rf.Rows {
		level := 0
		if row.Level != "" {
			level, _ = strconv.Atoi(row.Level)
		}

		officers = append(officers, &domain.Officer{
			ID:              uuid.New().String(),
			Name:            row.Name,
			Faction:         row.Faction,
			Rarity:          row.Rarity,
			Level:           level,
			CaptainManeuver: row.CaptainManeuver,
			OfficerAbility:  row.OfficerAbility,
			Source:          rf.Source,
			ImportedAt:      now,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return officers
}
