package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Guffawaffle/majel/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo using a SQLite database.
type SQLiteTranscriptRepo struct {
	db *sql.DB
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(db *sql.DB) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: db}
}

const transcriptColumns = `id, session_id, task_type, question, reply, verdict, created_at`

func (r *SQLiteTranscriptRepo) Create(ctx context.Context, e *domain.TranscriptEntry) error {
	query := `INSERT INTO transcripts (` + transcriptColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SessionID,
		string(e.TaskType),
		e.Question,
		e.Reply,
		string(e.Verdict),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting transcript entry: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptEntry, error) {
	query := `SELECT ` + transcriptColumns + ` FROM transcripts
		WHERE session_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing transcript by session: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteTranscriptRepo) ListRecent(ctx context.Context, limit int) ([]*domain.TranscriptEntry, error) {
	query := `SELECT ` + transcriptColumns + ` FROM transcripts
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transcript entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

// scanEntries scans multiple transcript entries from *sql.Rows.
func (r *SQLiteTranscriptRepo) scanEntries(rows *sql.Rows) ([]*domain.TranscriptEntry, error) {
	var entries []*domain.TranscriptEntry
	for rows.Next() {
		var e domain.TranscriptEntry
		var taskTypeStr, verdictStr, createdAtStr string

		err := rows.Scan(&e.ID, &e.SessionID, &taskTypeStr, &e.Question, &e.Reply, &verdictStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning transcript row: %w", err)
		}

		e.TaskType = domain.TaskType(taskTypeStr)
		e.Verdict = domain.Verdict(verdictStr)
		e.CreatedAt = parseTime(createdAtStr)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
