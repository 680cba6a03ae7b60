package guard

import (
	"strings"

	"github.com/Guffawaffle/majel/internal/domain"
)

// Validator check identifiers, stable across pattern-policy versions.
const (
	CheckDiagnosticClaim   = "diagnostic_claim"
	CheckUncitedNumeric    = "uncited_numeric_claim"
	CheckPatchClaim        = "unverified_patch_claim"
	CheckSourceAttribution = "missing_source_attribution"
)

// ValidateReply runs the pattern battery for the contract's category
// against the model's raw reply. strategy_general is exempt by design:
// it carries no hard rules and always passes. All other checks run
// independently and accumulate; a reply can trigger more than one.
//
// The gated context is accepted for future rules but not re-inspected.
func ValidateReply(reply string, contract *domain.TaskContract, _ *domain.GatedContext) domain.ValidationResult {
	if contract.TaskType == domain.TaskStrategyGeneral {
		return domain.ValidationResult{Pass: true}
	}

	p := activePolicy
	lower := strings.ToLower(reply)
	var violations []domain.Violation

	// Fabricated runtime-state claims fail regardless of the rule list.
	if m := p.diagnosticClaim.FindString(reply); m != "" {
		violations = append(violations, domain.Violation{
			Check:   CheckDiagnosticClaim,
			Detail:  "reply asserts internal system state the model cannot observe",
			Snippet: snippet(m),
		})
	}

	if hasRule(contract, RuleNoUncitedNumbers) {
		if v := checkUncitedNumbers(reply, lower, p); v != nil {
			violations = append(violations, *v)
		}
	}

	if contract.TaskType == domain.TaskReferenceLookup || contract.TaskType == domain.TaskFleetQuery {
		if m := p.patchClaim.FindString(reply); m != "" && !containsAny(lower, p.hedgePhrases) {
			violations = append(violations, domain.Violation{
				Check:   CheckPatchClaim,
				Detail:  "reply makes a patch/version claim without hedging",
				Snippet: snippet(m),
			})
		}
	}

	if hasRule(contract, RuleCiteSources) {
		if v := checkSourceAttribution(reply, lower, p); v != nil {
			violations = append(violations, *v)
		}
	}

	return domain.ValidationResult{
		Pass:       len(violations) == 0,
		Violations: violations,
	}
}

// checkUncitedNumbers flags game-domain numeric claims unless the reply
// also carries an explicit attribution or a hedge. Either one rescues
// the whole reply: a cited or hedged number is an honest number.
func checkUncitedNumbers(reply, lower string, p patternPolicy) *domain.Violation {
	frags := p.numericClaim.FindAllString(reply, p.maxQuotedFragments)
	if len(frags) == 0 {
		return nil
	}
	if containsAny(lower, p.attributionPhrases) || containsAny(lower, p.hedgePhrases) {
		return nil
	}
	for i := range frags {
		frags[i] = snippet(frags[i])
	}
	return &domain.Violation{
		Check:   CheckUncitedNumeric,
		Detail:  "numeric claims without attribution or hedge",
		Snippet: strings.Join(frags, " | "),
	}
}

// checkSourceAttribution is the coarse backstop for long, confident,
// fact-dense replies that evade the narrower numeric check: over the
// length threshold, containing a numeric claim, and disclosing no source
// signal at all.
func checkSourceAttribution(reply, lower string, p patternPolicy) *domain.Violation {
	if len(reply) <= p.longReplyThreshold {
		return nil
	}
	if !p.numericClaim.MatchString(reply) {
		return nil
	}
	if containsAny(lower, p.allSourceSignals()) {
		return nil
	}
	return &domain.Violation{
		Check:   CheckSourceAttribution,
		Detail:  "long factual reply discloses no source for its claims",
		Snippet: snippet(reply),
	}
}

func hasRule(contract *domain.TaskContract, rule string) bool {
	for _, r := range contract.Rules {
		if r == rule {
			return true
		}
	}
	return false
}

// snippet truncates matched text for violation records. Truncation is
// per rune, never mid-byte: snippets end up in receipts and repair
// prompts and must stay valid UTF-8.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > 80 {
		return string(runes[:80]) + "…"
	}
	return s
}
