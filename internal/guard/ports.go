// Package guard implements the guardrail pipeline that sits between the
// user's message and the model, and between the model's reply and the
// user: classification into a task contract, contract-gated context
// assembly, pattern-based output validation, and bounded repair-prompt
// construction with audit receipts.
//
// The pipeline is synchronous, CPU-only string work. The model call and
// any data lookups are the caller's and the collaborators' concern.
package guard

import (
	"github.com/Guffawaffle/majel/internal/domain"
)

// TierSnapshot reports which first-party context tiers are currently
// populated with real data.
type TierSnapshot struct {
	Config   bool
	Roster   bool
	Briefing bool
}

// ContextSource is the inbound data-availability collaborator. Lookup
// must be side-effect-free and fast; it is called once per matched name
// per request. A nil return means the name resolved to nothing, which is
// not an error — partial grounding is acceptable.
type ContextSource interface {
	Tiers() TierSnapshot
	Lookup(name string) *domain.ReferenceEntry
}

// NameSource supplies the known entity names the classifier matches
// against. Optional; without it no message classifies as a reference
// lookup on name evidence alone.
type NameSource interface {
	KnownNames() []string
}

// RuleSource supplies supplementary behavioral rules per task type.
// Optional; absence means contracts carry only their built-in rules.
type RuleSource interface {
	ActiveRules(task domain.TaskType) []domain.BehavioralRule
}

// ReceiptLogger receives finished receipts. Transport and retention are
// the collaborator's business.
type ReceiptLogger interface {
	LogReceipt(r domain.Receipt)
}

// NoopReceiptLogger discards receipts. Useful for tests.
type NoopReceiptLogger struct{}

func (NoopReceiptLogger) LogReceipt(domain.Receipt) {}
