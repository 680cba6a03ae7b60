package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/Guffawaffle/majel/internal/domain"
)

// NewOfficer creates an officer with sensible defaults for tests.
// Override fields after creation as needed.
func NewOfficer(name string) *domain.Officer {
	now := time.Now().UTC()
	return &domain.Officer{
		ID:              uuid.NewString(),
		Name:            name,
		Faction:         "Federation",
		Rarity:          "Epic",
		Level:           20,
		CaptainManeuver: "Increases shield health",
		OfficerAbility:  "Reduces weapon damage",
		Source:          "sheet:fleet-roster",
		ImportedAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewRule creates an enabled behavioral rule scoped to the given task type.
// An empty task type applies the rule to every category.
func NewRule(taskType domain.TaskType, text string) *domain.BehavioralRule {
	return &domain.BehavioralRule{
		ID:        uuid.NewString(),
		TaskType:  taskType,
		Text:      text,
		Severity:  domain.SeverityShould,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTranscriptEntry creates a transcript entry for tests.
func NewTranscriptEntry(sessionID string) *domain.TranscriptEntry {
	return &domain.TranscriptEntry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		TaskType:  domain.TaskFleetQuery,
		Question:  "who is on my roster?",
		Reply:     "Your roster data lists one officer.",
		Verdict:   domain.VerdictPass,
		CreatedAt: time.Now().UTC(),
	}
}

// NewReceipt creates a passing receipt for tests.
func NewReceipt(sessionID string) *domain.Receipt {
	return &domain.Receipt{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		SessionID:       sessionID,
		TaskType:        domain.TaskFleetQuery,
		ContextManifest: "officer roster (user-provided)",
		InjectedKeys:    []string{"reference:Khan"},
		Provenance: []domain.ProvenanceEntry{
			{Name: "Khan", Source: "sheet:fleet-roster", ImportedAt: time.Now().UTC()},
		},
		AppliedRuleIDs: nil,
		Verdict:        domain.VerdictPass,
		Violations:     nil,
		Duration:       42 * time.Millisecond,
	}
}
