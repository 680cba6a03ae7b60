package domain

import "time"

// Violation describes one failed validator check: the pattern that
// matched and a snippet of the offending text.
type Violation struct {
	Check   string
	Detail  string
	Snippet string
}

// ValidationResult is the outcome of running a reply against its contract.
type ValidationResult struct {
	Pass       bool
	Violations []Violation
}

// ProvenanceEntry records where one injected reference entry came from.
type ProvenanceEntry struct {
	Name       string
	Source     string
	ImportedAt time.Time
}

// Receipt is the immutable audit record of one classify→gate→validate
// cycle. Receipts are write-once: constructed after validation, handed to
// a logging collaborator, and never mutated afterwards.
type Receipt struct {
	ID              string
	Timestamp       time.Time
	SessionID       string
	TaskType        TaskType
	ContextManifest string
	InjectedKeys    []string
	Provenance      []ProvenanceEntry
	AppliedRuleIDs  []string
	Verdict         Verdict
	Violations      []Violation
	RepairAttempted bool
	Duration        time.Duration
}
