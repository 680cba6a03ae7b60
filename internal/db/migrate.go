package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// migrations re-run on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS officers (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE COLLATE NOCASE,
		faction          TEXT NOT NULL DEFAULT '',
		rarity           TEXT NOT NULL DEFAULT '',
		level            INTEGER NOT NULL DEFAULT 0,
		captain_maneuver TEXT NOT NULL DEFAULT '',
		officer_ability  TEXT NOT NULL DEFAULT '',
		source           TEXT NOT NULL DEFAULT '',
		imported_at      TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_officers_name ON officers(name)`,

	`CREATE TABLE IF NOT EXISTS behavioral_rules (
		id         TEXT PRIMARY KEY,
		task_type  TEXT NOT NULL DEFAULT ''
		           CHECK(task_type IN ('', 'reference_lookup','dock_planning','fleet_query','strategy_general')),
		text       TEXT NOT NULL,
		severity   TEXT NOT NULL DEFAULT 'should'
		           CHECK(severity IN ('must','should','style')),
		enabled    INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_rules_task_type ON behavioral_rules(task_type)`,

	`CREATE TABLE IF NOT EXISTS transcripts (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		task_type  TEXT NOT NULL,
		question   TEXT NOT NULL,
		reply      TEXT NOT NULL,
		verdict    TEXT NOT NULL
		           CHECK(verdict IN ('pass','fail','repaired')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transcripts_session ON transcripts(session_id)`,

	`CREATE TABLE IF NOT EXISTS receipts (
		id               TEXT PRIMARY KEY,
		timestamp        TEXT NOT NULL,
		session_id       TEXT NOT NULL,
		task_type        TEXT NOT NULL,
		context_manifest TEXT NOT NULL DEFAULT '',
		injected_keys    TEXT NOT NULL DEFAULT '[]',
		provenance       TEXT NOT NULL DEFAULT '[]',
		applied_rule_ids TEXT NOT NULL DEFAULT '[]',
		verdict          TEXT NOT NULL
		                 CHECK(verdict IN ('pass','fail','repaired')),
		violations       TEXT NOT NULL DEFAULT '[]',
		repair_attempted INTEGER NOT NULL DEFAULT 0,
		duration_ms      INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_receipts_session ON receipts(session_id)`,
}
