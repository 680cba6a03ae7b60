package guard

import (
	"regexp"
	"strings"
)

// patternPolicy is the versioned pattern set the validator runs. It is a
// policy table, not inlined logic: new violation types are data edits
// here, never changes to the orchestration code. Compiled once;
// read-only process-wide.
type patternPolicy struct {
	version string

	// Assertions of internal system/runtime state expressed as a value.
	// The model cannot observe runtime internals, so any match is a
	// fabrication by construction.
	diagnosticClaim *regexp.Regexp

	// Game-domain numeric claims: levels, tiers, percentages, resource
	// quantities, stat names followed by a number.
	numericClaim *regexp.Regexp

	// Version/patch-note style claims.
	patchClaim *regexp.Regexp

	// Explicit first-party attribution phrases.
	attributionPhrases []string

	// Explicit uncertainty/hedge phrases.
	hedgePhrases []string

	// Broader source-signal set for the long-reply backstop: anything
	// that indicates the reply discloses where its facts come from.
	sourceSignals []string

	// Replies longer than this (in bytes) are in scope for the
	// source-attribution backstop.
	longReplyThreshold int

	// How many matched numeric fragments a violation quotes at most.
	maxQuotedFragments int
}

var policyV1 = patternPolicy{
	version: "v1",

	diagnosticClaim: regexp.MustCompile(
		`(?i)\b(memory frames?|frame count|connection status|session count|context window|token (?:count|usage)|uptime|heap size|cache entries)\b\s*(?:is|are|:|=)\s*-?[0-9]+`),

	numericClaim: regexp.MustCompile(
		`(?i)\b(?:level|tier|rank|power|attack|defense|health|shield|damage|mitigation|warp(?: range)?|crit(?:ical)? (?:chance|damage)|parsteel|tritanium|dilithium|latinum)\b[^.!?\n]{0,20}?[0-9][0-9,.]*%?|\b[0-9]+(?:\.[0-9]+)?%`),

	patchClaim: regexp.MustCompile(
		`(?i)\b(?:patch|version|update|hotfix)\s+v?[0-9]+(?:\.[0-9]+)*\b|\bv[0-9]+\.[0-9]+(?:\.[0-9]+)?\b|\b(?:nerfed|buffed|reworked)\s+in\b|\bpatch notes\b`),

	attributionPhrases: []string{
		"your roster",
		"your fleet data",
		"your imported",
		"according to",
		"from your",
		"in the provided",
		"provided data",
		"the reference entry",
	},

	hedgePhrases: []string{
		"may be outdated",
		"might be outdated",
		"may have changed",
		"not certain",
		"uncertain",
		"i'm not sure",
		"roughly",
		"approximately",
		"i believe",
		"if i recall",
		"as of my knowledge",
	},

	sourceSignals: []string{
		"based on",
		"training",
		"general knowledge",
		"fleet configuration",
		"officer roster",
		"situational briefing",
		"data not available",
	},

	longReplyThreshold: 400,
	maxQuotedFragments: 3,
}

// activePolicy is the pattern set the validator currently enforces.
var activePolicy = policyV1

// allSourceSignals is the full signal set for the long-reply backstop:
// hedges, attributions, and the generic disclosure phrases combined.
func (p patternPolicy) allSourceSignals() []string {
	out := make([]string, 0, len(p.hedgePhrases)+len(p.attributionPhrases)+len(p.sourceSignals))
	out = append(out, p.hedgePhrases...)
	out = append(out, p.attributionPhrases...)
	out = append(out, p.sourceSignals...)
	return out
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
