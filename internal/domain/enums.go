package domain

// TaskType classifies what kind of question a message is asking.
type TaskType string

const (
	TaskReferenceLookup TaskType = "reference_lookup"
	TaskDockPlanning    TaskType = "dock_planning"
	TaskFleetQuery      TaskType = "fleet_query"
	TaskStrategyGeneral TaskType = "strategy_general"
)

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"reference_lookup": true, "dock_planning": true,
	"fleet_query": true, "strategy_general": true,
}

// RuleSeverity ranks how binding a behavioral rule is.
type RuleSeverity string

const (
	SeverityMust   RuleSeverity = "must"
	SeverityShould RuleSeverity = "should"
	SeverityStyle  RuleSeverity = "style"
)

// ValidSeverities is the canonical set of accepted severity strings.
var ValidSeverities = map[string]bool{
	"must": true, "should": true, "style": true,
}

// Verdict is the final validation outcome recorded on a receipt.
// VerdictRepaired is only ever set by the caller after a clean second
// validation pass; the validator itself reports pass or fail.
type Verdict string

const (
	VerdictPass     Verdict = "pass"
	VerdictFail     Verdict = "fail"
	VerdictRepaired Verdict = "repaired"
)
