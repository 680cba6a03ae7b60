package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/guard"
	"github.com/Guffawaffle/majel/internal/repository"
)

// fleetSnapshot is a per-request view of the admiral's data, loaded once
// at the start of a turn so classification and context gating see a
// consistent roster. Implements guard.ContextSource and guard.NameSource.
type fleetSnapshot struct {
	names   []string
	entries map[string]domain.ReferenceEntry // lowercased name -> entry
}

// loadFleetSnapshot reads the current roster into an immutable snapshot.
func loadFleetSnapshot(ctx context.Context, officers repository.OfficerRepo) (*fleetSnapshot, error) {
	all, err := officers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster snapshot: %w", err)
	}

	snap := &fleetSnapshot{
		entries: make(map[string]domain.ReferenceEntry, len(all)),
	}
	for _, o := range all {
		snap.names = append(snap.names, o.Name)
		snap.entries[strings.ToLower(o.Name)] = o.ReferenceEntry()
	}
	return snap, nil
}

func (s *fleetSnapshot) Tiers() guard.TierSnapshot {
	return guard.TierSnapshot{Roster: len(s.entries) > 0}
}

func (s *fleetSnapshot) KnownNames() []string {
	return s.names
}

func (s *fleetSnapshot) Lookup(name string) *domain.ReferenceEntry {
	e, ok := s.entries[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return &e
}

// taskRules adapts RuleRepo to guard.RuleSource for one assistant turn.
// The rule query can only run once the classifier has fixed the task
// type, so the adapter carries the turn's context and stashes any
// repository error for the caller to check after Prepare; the guard
// interface itself has no error channel.
type taskRules struct {
	ctx  context.Context
	repo repository.RuleRepo
	err  error
}

// ActiveRules returns the enabled rules scoped to the given task type
// plus rules with an empty task type, which apply everywhere.
func (t *taskRules) ActiveRules(task domain.TaskType) []domain.BehavioralRule {
	list, err := t.repo.ListForTask(t.ctx, task)
	if err != nil {
		t.err = fmt.Errorf("loading rules for %s: %w", task, err)
		return nil
	}
	out := make([]domain.BehavioralRule, 0, len(list))
	for _, r := range list {
		out = append(out, *r)
	}
	return out
}
