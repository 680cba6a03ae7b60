package domain

import "time"

// BehavioralRule is a supplementary directive from the rule store,
// merged into a contract's rule list at prepare time. An empty TaskType
// applies the rule to every category.
type BehavioralRule struct {
	ID        string
	TaskType  TaskType
	Text      string
	Severity  RuleSeverity
	Enabled   bool
	CreatedAt time.Time
}
