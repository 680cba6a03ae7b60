package service

import (
	"context"

	"github.com/Guffawaffle/majel/internal/domain"
)

// AssistantReply is the outcome of one full assistant turn: the text
// shown to the user and the receipt recording how it was produced and
// judged.
type AssistantReply struct {
	Text    string
	Model   string
	Receipt domain.Receipt
}

type AssistantService interface {
	// Respond runs one full turn: classify, gate context, call the
	// model, validate, retry at most once on failure, and record a
	// receipt and transcript entry.
	Respond(ctx context.Context, sessionID, message string) (*AssistantReply, error)
}

// ImportResult summarizes a roster import.
type ImportResult struct {
	Imported int
	Source   string
}

type RosterService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	List(ctx context.Context) ([]*domain.Officer, error)
	GetByName(ctx context.Context, name string) (*domain.Officer, error)
	Count(ctx context.Context) (int, error)
}

type RuleService interface {
	Add(ctx context.Context, taskType, text, severity string) (*domain.BehavioralRule, error)
	List(ctx context.Context, includeDisabled bool) ([]*domain.BehavioralRule, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

type ReceiptService interface {
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Receipt, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Receipt, error)
}

type TranscriptService interface {
	ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.TranscriptEntry, error)
}
