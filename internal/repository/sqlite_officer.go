package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Guffawaffle/majel/internal/db"
	"github.com/Guffawaffle/majel/internal/domain"
)

// SQLiteOfficerRepo implements OfficerRepo using a SQLite database.
// It is built over db.DBTX so imports can run it inside a transaction.
type SQLiteOfficerRepo struct {
	db db.DBTX
}

// NewSQLiteOfficerRepo creates an officer repository over conn, which
// may be a *sql.DB or an open transaction.
func NewSQLiteOfficerRepo(conn db.DBTX) *SQLiteOfficerRepo {
	return &SQLiteOfficerRepo{db: conn}
}

const officerColumns = `id, name, faction, rarity, level, captain_maneuver, officer_ability, source, imported_at, created_at, updated_at`

func (r *SQLiteOfficerRepo) Create(ctx context.Context, o *domain.Officer) error {
	query := `INSERT INTO officers (` + officerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Name,
		o.Faction,
		o.Rarity,
		o.Level,
		o.CaptainManeuver,
		o.OfficerAbility,
		o.Source,
		o.ImportedAt.Format(time.RFC3339),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting officer: %w", err)
	}
	return nil
}

// Upsert inserts the officer, or replaces the stored record when an
// officer with the same name already exists. Re-imports keep the
// original id and created_at.
func (r *SQLiteOfficerRepo) Upsert(ctx context.Context, o *domain.Officer) error {
	query := `INSERT INTO officers (` + officerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			faction = excluded.faction,
			rarity = excluded.rarity,
			level = excluded.level,
			captain_maneuver = excluded.captain_maneuver,
			officer_ability = excluded.officer_ability,
			source = excluded.source,
			imported_at = excluded.imported_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Name,
		o.Faction,
		o.Rarity,
		o.Level,
		o.CaptainManeuver,
		o.OfficerAbility,
		o.Source,
		o.ImportedAt.Format(time.RFC3339),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting officer: %w", err)
	}
	return nil
}

func (r *SQLiteOfficerRepo) GetByID(ctx context.Context, id string) (*domain.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanOfficer(row)
}

func (r *SQLiteOfficerRepo) GetByName(ctx context.Context, name string) (*domain.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, name)
	return r.scanOfficer(row)
}

func (r *SQLiteOfficerRepo) List(ctx context.Context) ([]*domain.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing officers: %w", err)
	}
	defer rows.Close()
	return r.scanOfficers(rows)
}

func (r *SQLiteOfficerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM officers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting officer: %w", err)
	}
	return nil
}

func (r *SQLiteOfficerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM officers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting officers: %w", err)
	}
	return n, nil
}

// scanOfficer scans a single officer from a *sql.Row.
func (r *SQLiteOfficerRepo) scanOfficer(row *sql.Row) (*domain.Officer, error) {
	var o domain.Officer
	var importedAtStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&o.ID, &o.Name, &o.Faction, &o.Rarity, &o.Level,
		&o.CaptainManeuver, &o.OfficerAbility, &o.Source,
		&importedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("officer: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning officer: %w", err)
	}

	o.ImportedAt = parseTime(importedAtStr)
	o.CreatedAt = parseTime(createdAtStr)
	o.UpdatedAt = parseTime(updatedAtStr)
	return &o, nil
}

// scanOfficers scans multiple officers from *sql.Rows.
func (r *SQLiteOfficerRepo) scanOfficers(rows *sql.Rows) ([]*domain.Officer, error) {
	var officers []*domain.Officer
	for rows.Next() {
		var o domain.Officer
		var importedAtStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&o.ID, &o.Name, &o.Faction, &o.Rarity, &o.Level,
			&o.CaptainManeuver, &o.OfficerAbility, &o.Source,
			&importedAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning officer row: %w", err)
		}

		o.ImportedAt = parseTime(importedAtStr)
		o.CreatedAt = parseTime(createdAtStr)
		o.UpdatedAt = parseTime(updatedAtStr)
		officers = append(officers, &o)
	}
	return officers, rows.Err()
}
