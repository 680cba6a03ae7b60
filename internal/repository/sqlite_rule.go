package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Guffawaffle/majel/internal/domain"
)

// SQLiteRuleRepo implements RuleRepo using a SQLite database.
type SQLiteRuleRepo struct {
	db *sql.DB
}

// NewSQLiteRuleRepo creates a new SQLiteRuleRepo.
func NewSQLiteRuleRepo(db *sql.DB) *SQLiteRuleRepo {
	return &SQLiteRuleRepo{db: db}
}

const ruleColumns = `id, task_type, text, severity, enabled, created_at`

func (r *SQLiteRuleRepo) Create(ctx context.Context, rule *domain.BehavioralRule) error {
	query := `INSERT INTO behavioral_rules (` + ruleColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rule.ID,
		string(rule.TaskType),
		rule.Text,
		string(rule.Severity),
		boolToInt(rule.Enabled),
		rule.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting behavioral rule: %w", err)
	}
	return nil
}

func (r *SQLiteRuleRepo) GetByID(ctx context.Context, id string) (*domain.BehavioralRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM behavioral_rules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanRule(row)
}

func (r *SQLiteRuleRepo) List(ctx context.Context, includeDisabled bool) ([]*domain.BehavioralRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM behavioral_rules`
	if !includeDisabled {
		query += ` WHERE enabled = 1`
	}
	query += ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing behavioral rules: %w", err)
	}
	defer rows.Close()
	return r.scanRules(rows)
}

// ListForTask returns enabled rules scoped to the given task type,
// plus rules with an empty task type (which apply to all categories).
func (r *SQLiteRuleRepo) ListForTask(ctx context.Context, taskType domain.TaskType) ([]*domain.BehavioralRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM behavioral_rules
		WHERE enabled = 1 AND (task_type = ? OR task_type = '')
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, string(taskType))
	if err != nil {
		return nil, fmt.Errorf("listing rules for task: %w", err)
	}
	defer rows.Close()
	return r.scanRules(rows)
}

func (r *SQLiteRuleRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE behavioral_rules SET enabled = ? WHERE id = ?`,
		boolToInt(enabled), id,
	)
	if err != nil {
		return fmt.Errorf("updating rule enabled: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rule update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("behavioral rule: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteRuleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM behavioral_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting behavioral rule: %w", err)
	}
	return nil
}

// scanRule scans a single rule from a *sql.Row.
func (r *SQLiteRuleRepo) scanRule(row *sql.Row) (*domain.BehavioralRule, error) {
	var rule domain.BehavioralRule
	var taskTypeStr, severityStr, createdAtStr string
	var enabledInt int

	err := row.Scan(&rule.ID, &taskTypeStr, &rule.Text, &severityStr, &enabledInt, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("behavioral rule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning behavioral rule: %w", err)
	}

	rule.TaskType = domain.TaskType(taskTypeStr)
	rule.Severity = domain.RuleSeverity(severityStr)
	rule.Enabled = intToBool(enabledInt)
	rule.CreatedAt = parseTime(createdAtStr)
	return &rule, nil
}

// scanRules scans multiple rules from *sql.Rows.
func (r *SQLiteRuleRepo) scanRules(rows *sql.Rows) ([]*domain.BehavioralRule, error) {
	var rules []*domain.BehavioralRule
	for rows.Next() {
		var rule domain.BehavioralRule
		var taskTypeStr, severityStr, createdAtStr string
		var enabledInt int

		err := rows.Scan(&rule.ID, &taskTypeStr, &rule.Text, &severityStr, &enabledInt, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning behavioral rule row: %w", err)
		}

		rule.TaskType = domain.TaskType(taskTypeStr)
		rule.Severity = domain.RuleSeverity(severityStr)
		rule.Enabled = intToBool(enabledInt)
		rule.CreatedAt = parseTime(createdAtStr)
		rules = append(rules, &rule)
	}
	return rules, rows.Err()
}
