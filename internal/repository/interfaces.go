package repository

import (
	"context"
	"errors"

	"github.com/Guffawaffle/majel/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type OfficerRepo interface {
	Create(ctx context.Context, o *domain.Officer) error
	GetByID(ctx context.Context, id string) (*domain.Officer, error)
	GetByName(ctx context.Context, name string) (*domain.Officer, error)
	List(ctx context.Context) ([]*domain.Officer, error)
	Upsert(ctx context.Context, o *domain.Officer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type RuleRepo interface {
	Create(ctx context.Context, r *domain.BehavioralRule) error
	GetByID(ctx context.Context, id string) (*domain.BehavioralRule, error)
	List(ctx context.Context, includeDisabled bool) ([]*domain.BehavioralRule, error)
	ListForTask(ctx context.Context, taskType domain.TaskType) ([]*domain.BehavioralRule, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

type TranscriptRepo interface {
	Create(ctx context.Context, e *domain.TranscriptEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.TranscriptEntry, error)
}

type ReceiptRepo interface {
	Create(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Receipt, error)
}
