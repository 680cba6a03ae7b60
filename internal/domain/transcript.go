package domain

import "time"

// TranscriptEntry is one persisted chat turn: the question asked, the
// reply shown to the user, and how validation judged it.
type TranscriptEntry struct {
	ID        string
	SessionID string
	TaskType  TaskType
	Question  string
	Reply     string
	Verdict   Verdict
	CreatedAt time.Time
}
