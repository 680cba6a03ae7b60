package guard

import (
	"fmt"
	"strings"
	"time"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/google/uuid"
)

// Prepared is everything the caller needs to perform the model call.
type Prepared struct {
	Contract         *domain.TaskContract
	Context          *domain.GatedContext
	AugmentedMessage string
}

// Validated is the outcome of judging one reply. The receipt is always
// populated, whether or not repair is recommended; RepairPrompt is empty
// on a pass.
type Validated struct {
	Result       domain.ValidationResult
	NeedsRepair  bool
	RepairPrompt string
	Receipt      domain.Receipt
}

// Orchestrator sequences the pipeline: classify, merge behavioral rules,
// gate context, validate replies, build repair prompts, emit receipts.
//
// It never loops: the at-most-one repair retry is the caller's policy.
// Each call is independent; the orchestrator holds no per-request state
// and is safe for concurrent use as long as its collaborators are.
type Orchestrator struct {
	contexts ContextSource
	names    NameSource
	rules    RuleSource
	logger   ReceiptLogger
}

// NewOrchestrator wires the pipeline's collaborators. names, rules, and
// logger may be nil: no known names, no supplementary rules, discarded
// receipts.
func NewOrchestrator(contexts ContextSource, names NameSource, rules RuleSource, logger ReceiptLogger) *Orchestrator {
	if logger == nil {
		logger = NoopReceiptLogger{}
	}
	return &Orchestrator{
		contexts: contexts,
		names:    names,
		rules:    rules,
		logger:   logger,
	}
}

// Prepare classifies the message, merges in active behavioral rules for
// the task type (each prefixed with its severity so the model receives
// them as directives, not structured data), gates the context, and
// augments the message.
func (o *Orchestrator) Prepare(message string) Prepared {
	var tiers TierSnapshot
	if o.contexts != nil {
		tiers = o.contexts.Tiers()
	}
	var known []string
	if o.names != nil {
		known = o.names.KnownNames()
	}

	contract := Classify(message, tiers, known)

	if o.rules != nil {
		for _, rule := range o.rules.ActiveRules(contract.TaskType) {
			if !rule.Enabled {
				continue
			}
			contract.Rules = append(contract.Rules, severityPrefix(rule.Severity)+rule.Text)
			contract.AppliedRuleIDs = append(contract.AppliedRuleIDs, rule.ID)
		}
	}

	gc := GateContext(contract, o.contexts)

	return Prepared{
		Contract:         contract,
		Context:          gc,
		AugmentedMessage: Augment(message, gc),
	}
}

// Validate judges a reply against its contract and always returns a
// receipt. On failure it also returns a repair prompt for the caller to
// re-send exactly once; this core does not track or limit the retry.
func (o *Orchestrator) Validate(reply string, contract *domain.TaskContract, gc *domain.GatedContext, sessionID string, startTime time.Time) Validated {
	result := ValidateReply(reply, contract, gc)

	v := Validated{Result: result}
	if !result.Pass {
		v.NeedsRepair = true
		v.RepairPrompt = BuildRepairPrompt(result.Violations, contract)
	}

	verdict := domain.VerdictPass
	if !result.Pass {
		verdict = domain.VerdictFail
	}

	var provenance []domain.ProvenanceEntry
	var injected []string
	if gc != nil {
		injected = gc.InjectedKeys
		for _, e := range gc.Entries {
			provenance = append(provenance, domain.ProvenanceEntry{
				Name:       e.Name,
				Source:     e.Source,
				ImportedAt: e.ImportedAt,
			})
		}
	}

	v.Receipt = domain.Receipt{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		SessionID:       sessionID,
		TaskType:        contract.TaskType,
		ContextManifest: contract.ContextManifest,
		InjectedKeys:    injected,
		Provenance:      provenance,
		AppliedRuleIDs:  contract.AppliedRuleIDs,
		Verdict:         verdict,
		Violations:      result.Violations,
		Duration:        time.Since(startTime),
	}

	return v
}

// Finalize hands the finished receipt to the logging collaborator.
func (o *Orchestrator) Finalize(r domain.Receipt) {
	o.logger.LogReceipt(r)
}

// BuildRepairPrompt constructs the one-shot repair instruction: every
// violation, the full rule list, the expected reply fields, and the
// original question. Deterministic: identical inputs produce an
// identical prompt.
func BuildRepairPrompt(violations []domain.Violation, contract *domain.TaskContract) string {
	var b strings.Builder

	b.WriteString("Your previous reply violated the rules it was given. Correct every violation and answer the question again.\n\n")

	b.WriteString("Violations:\n")
	for i, v := range violations {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, v.Check, v.Detail)
		if v.Snippet != "" {
			fmt.Fprintf(&b, " (offending text: %q)", v.Snippet)
		}
		b.WriteString("\n")
	}

	if len(contract.Rules) > 0 {
		b.WriteString("\nRules to follow:\n")
		for _, r := range contract.Rules {
			b.WriteString("- ")
			b.WriteString(r)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nYour reply must address: ")
	b.WriteString(strings.Join(schemaFields(contract.OutputSchema), ", "))
	b.WriteString("\n\nOriginal question:\n")
	b.WriteString(contract.Message)

	return b.String()
}

func schemaFields(s domain.OutputSchema) []string {
	fields := []string{"answer"}
	if s.FactsUsed {
		fields = append(fields, "facts_used")
	}
	if s.Assumptions {
		fields = append(fields, "assumptions")
	}
	if s.Unknowns {
		fields = append(fields, "unknowns")
	}
	if s.Confidence {
		fields = append(fields, "confidence")
	}
	return fields
}

func severityPrefix(s domain.RuleSeverity) string {
	switch s {
	case domain.SeverityMust:
		return "MUST: "
	case domain.SeverityShould:
		return "SHOULD: "
	case domain.SeverityStyle:
		return "STYLE: "
	default:
		return "SHOULD: "
	}
}
