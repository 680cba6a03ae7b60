package guard

import (
	"regexp"
	"strings"

	"github.com/Guffawaffle/majel/internal/domain"
)

// Classification patterns, evaluated in fixed precedence order. Compiled
// once; read-only process-wide.
var (
	// Situational/location keywords: dock and berth planning, loadouts,
	// and short location codes like "D3" or "dock 2".
	dockPattern = regexp.MustCompile(`(?i)\b(docks?|drydocks?|berths?|loadouts?|load-outs?|hangars?)\b|\b[dD]-?[0-9]\b`)

	// First-person possessive fleet phrases.
	fleetPattern = regexp.MustCompile(`(?i)\bmy\s+(roster|fleet|crew|ships?|officers?|bridge)\b`)
)

// Built-in rule directives. The validator matches these literals to
// decide which rule-gated checks apply, so they are stable contract text,
// not cosmetic strings.
const (
	RuleCiteSources       = "Cite the source tier for every factual claim."
	RuleNoUncitedNumbers  = "Do not state numeric values unless cited to provided data."
	RuleNoInventedConfigs = "Do not invent dock or loadout configurations that are not in the provided data."
)

// Manifest tier labels, in the fixed order the manifest lists them. The
// trailing marker names the model's own background knowledge. This
// ordering is a stable contract consumed by the validator's source-signal
// check.
const (
	manifestConfig   = "fleet configuration (user-provided)"
	manifestRoster   = "officer roster (user-provided)"
	manifestBriefing = "situational briefing (user-provided)"
	manifestGeneral  = "general game knowledge (model background)"
)

// categoryPolicy fixes the required tiers, rules, and output schema per
// task category.
type categoryPolicy struct {
	config   bool
	roster   bool
	briefing bool
	rules    []string
	schema   domain.OutputSchema
}

var categoryPolicies = map[domain.TaskType]categoryPolicy{
	domain.TaskReferenceLookup: {
		roster: true,
		rules:  []string{RuleCiteSources, RuleNoUncitedNumbers},
		schema: domain.OutputSchema{Answer: true, FactsUsed: true, Unknowns: true},
	},
	domain.TaskDockPlanning: {
		config: true, roster: true, briefing: true,
		rules:  []string{RuleCiteSources, RuleNoUncitedNumbers, RuleNoInventedConfigs},
		schema: domain.OutputSchema{Answer: true, FactsUsed: true, Assumptions: true},
	},
	domain.TaskFleetQuery: {
		config: true, roster: true, briefing: true,
		rules:  []string{RuleCiteSources, RuleNoUncitedNumbers},
		schema: domain.OutputSchema{Answer: true, FactsUsed: true, Unknowns: true},
	},
	domain.TaskStrategyGeneral: {
		config: true,
		schema: domain.OutputSchema{Answer: true, Confidence: true},
	},
}

// Classify maps a raw message plus the current data availability into a
// task contract. It has no failure modes: when nothing more specific
// matches, the permissive strategy_general contract is the safety net.
//
// Precedence is fixed and total: dock keywords, then possessive fleet
// phrases, then known-name matches, then the default.
func Classify(message string, tiers TierSnapshot, knownNames []string) *domain.TaskContract {
	task := domain.TaskStrategyGeneral
	var lookup []string

	switch {
	case dockPattern.MatchString(message):
		task = domain.TaskDockPlanning
	case fleetPattern.MatchString(message):
		task = domain.TaskFleetQuery
	default:
		lookup = matchKnownNames(message, knownNames)
		if len(lookup) > 0 {
			task = domain.TaskReferenceLookup
		}
	}

	policy := categoryPolicies[task]
	required := domain.RequiredTiers{
		Config:   policy.config,
		Roster:   policy.roster,
		Briefing: policy.briefing,
		Lookup:   lookup,
	}

	return &domain.TaskContract{
		TaskType:        task,
		Message:         message,
		RequiredTiers:   required,
		ContextManifest: buildManifest(required, tiers),
		Rules:           append([]string(nil), policy.rules...),
		OutputSchema:    policy.schema,
	}
}

// matchKnownNames collects every known entity name that appears in the
// message as a whole word, case-insensitive. Names of length <= 2 are
// excluded to avoid false positives on initials and codes.
func matchKnownNames(message string, names []string) []string {
	var matched []string
	for _, name := range names {
		if len(name) <= 2 {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(message) {
			matched = append(matched, name)
		}
	}
	return matched
}

// buildManifest lists, in fixed order, each tier that is both required
// and actually available, then the lookup entries, then the constant
// general-knowledge marker. Lookup entries are provisional at this
// point: whether a name actually resolves is only known at gate time,
// and GateContext strips the ones that do not.
func buildManifest(required domain.RequiredTiers, tiers TierSnapshot) string {
	var parts []string
	if required.Config && tiers.Config {
		parts = append(parts, manifestConfig)
	}
	if required.Roster && tiers.Roster {
		parts = append(parts, manifestRoster)
	}
	if required.Briefing && tiers.Briefing {
		parts = append(parts, manifestBriefing)
	}
	for _, name := range required.Lookup {
		parts = append(parts, "reference: "+name)
	}
	parts = append(parts, manifestGeneral)
	return strings.Join(parts, "; ")
}
