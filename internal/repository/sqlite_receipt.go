package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Guffawaffle/majel/internal/domain"
)

// SQLiteReceiptRepo implements ReceiptRepo using a SQLite database.
// Slice-valued fields (injected keys, provenance, violations) are stored
// as JSON text columns.
type SQLiteReceiptRepo struct {
	db *sql.DB
}

// NewSQLiteReceiptRepo creates a new SQLiteReceiptRepo.
func NewSQLiteReceiptRepo(db *sql.DB) *SQLiteReceiptRepo {
	return &SQLiteReceiptRepo{db: db}
}

const receiptColumns = `id, timestamp, session_id, task_type, context_manifest, injected_keys, provenance, applied_rule_ids, verdict, violations, repair_attempted, duration_ms`

func (r *SQLiteReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	injectedKeys, err := marshalJSON(receipt.InjectedKeys)
	if err != nil {
		return err
	}
	provenance, err := marshalJSON(receipt.Provenance)
	if err != nil {
		return err
	}
	ruleIDs, err := marshalJSON(receipt.AppliedRuleIDs)
	if err != nil {
		return err
	}
	violations, err := marshalJSON(receipt.Violations)
	if err != nil {
		return err
	}

	query := `INSERT INTO receipts (` + receiptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.Timestamp.Format(time.RFC3339),
		receipt.SessionID,
		string(receipt.TaskType),
		receipt.ContextManifest,
		injectedKeys,
		provenance,
		ruleIDs,
		string(receipt.Verdict),
		violations,
		boolToInt(receipt.RepairAttempted),
		receipt.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("inserting receipt: %w", err)
	}
	return nil
}

func (r *SQLiteReceiptRepo) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanReceipt(row)
}

func (r *SQLiteReceiptRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts
		WHERE session_id = ? ORDER BY timestamp`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing receipts by session: %w", err)
	}
	defer rows.Close()
	return r.scanReceipts(rows)
}

func (r *SQLiteReceiptRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts
		ORDER BY timestamp DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent receipts: %w", err)
	}
	defer rows.Close()
	return r.scanReceipts(rows)
}

type receiptRow struct {
	timestamp       string
	taskType        string
	injectedKeys    string
	provenance      string
	ruleIDs         string
	verdict         string
	violations      string
	repairAttempted int
	durationMs      int64
}

func (row *receiptRow) populate(receipt *domain.Receipt) error {
	receipt.Timestamp = parseTime(row.timestamp)
	receipt.TaskType = domain.TaskType(row.taskType)
	receipt.Verdict = domain.Verdict(row.verdict)
	receipt.RepairAttempted = intToBool(row.repairAttempted)
	receipt.Duration = time.Duration(row.durationMs) * time.Millisecond

	if err := unmarshalJSON(row.injectedKeys, &receipt.InjectedKeys); err != nil {
		return err
	}
	if err := unmarshalJSON(row.provenance, &receipt.Provenance); err != nil {
		return err
	}
	if err := unmarshalJSON(row.ruleIDs, &receipt.AppliedRuleIDs); err != nil {
		return err
	}
	return unmarshalJSON(row.violations, &receipt.Violations)
}

// scanReceipt scans a single receipt from a *sql.Row.
func (r *SQLiteReceiptRepo) scanReceipt(row *sql.Row) (*domain.Receipt, error) {
	var receipt domain.Receipt
	var raw receiptRow

	err := row.Scan(
		&receipt.ID, &raw.timestamp, &receipt.SessionID, &raw.taskType,
		&receipt.ContextManifest, &raw.injectedKeys, &raw.provenance,
		&raw.ruleIDs, &raw.verdict, &raw.violations,
		&raw.repairAttempted, &raw.durationMs,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("receipt: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning receipt: %w", err)
	}

	if err := raw.populate(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// scanReceipts scans multiple receipts from *sql.Rows.
func (r *SQLiteReceiptRepo) scanReceipts(rows *sql.Rows) ([]*domain.Receipt, error) {
	var receipts []*domain.Receipt
	for rows.Next() {
		var receipt domain.Receipt
		var raw receiptRow

		err := rows.Scan(
			&receipt.ID, &raw.timestamp, &receipt.SessionID, &raw.taskType,
			&receipt.ContextManifest, &raw.injectedKeys, &raw.provenance,
			&raw.ruleIDs, &raw.verdict, &raw.violations,
			&raw.repairAttempted, &raw.durationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning receipt row: %w", err)
		}

		if err := raw.populate(&receipt); err != nil {
			return nil, err
		}
		receipts = append(receipts, &receipt)
	}
	return receipts, rows.Err()
}
