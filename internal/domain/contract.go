package domain

// RequiredTiers names the context tiers a task contract calls for.
// The three booleans cover first-party data; Lookup lists entity names
// that need a second-party reference lookup.
type RequiredTiers struct {
	Config   bool
	Roster   bool
	Briefing bool
	Lookup   []string
}

// OutputSchema names the structural fields a reply is expected to surface.
// Advisory only: it is fed into repair prompts, never mechanically enforced.
type OutputSchema struct {
	Answer      bool // always true
	FactsUsed   bool
	Assumptions bool
	Unknowns    bool
	Confidence  bool
}

// TaskContract is the per-message policy object produced by classification.
// It is created fresh per message and immutable except for rule
// augmentation by the orchestrator.
type TaskContract struct {
	TaskType        TaskType
	Message         string
	RequiredTiers   RequiredTiers
	ContextManifest string
	Rules           []string
	AppliedRuleIDs  []string
	OutputSchema    OutputSchema
}
