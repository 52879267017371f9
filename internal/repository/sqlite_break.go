package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

// breakColumns is the canonical SELECT column list for break_periods.
const breakColumns = `id, session_date, break_type, start_time, end_time, created_at`

// SQLiteBreakRepo implements BreakRepo using a SQLite database.
type SQLiteBreakRepo struct {
	conn db.DBTX
}

// NewSQLiteBreakRepo creates a new SQLiteBreakRepo.
func NewSQLiteBreakRepo(conn db.DBTX) *SQLiteBreakRepo {
	return &SQLiteBreakRepo{conn: conn}
}

func (r *SQLiteBreakRepo) Create(ctx context.Context, b *domain.BreakPeriod) error {
	query := `INSERT INTO break_periods (id, session_date, break_type, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		b.ID,
		b.SessionDate,
		string(b.Type),
		b.StartTime.Format(time.RFC3339),
		nullableTimeToString(b.EndTime, time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting break period: %w", err)
	}
	return nil
}

func (r *SQLiteBreakRepo) GetByID(ctx context.Context, id string) (*domain.BreakPeriod, error) {
	query := `SELECT ` + breakColumns + ` FROM break_periods WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return r.scanBreak(row)
}

func (r *SQLiteBreakRepo) ListBySession(ctx context.Context, date string) ([]*domain.BreakPeriod, error) {
	query := `SELECT ` + breakColumns + ` FROM break_periods
		WHERE session_date = ? ORDER BY start_time`
	rows, err := r.conn.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing breaks by session: %w", err)
	}
	defer rows.Close()
	return r.scanBreaks(rows)
}

// GetOpen returns the session's open break period, or ErrNotFound when all
// breaks are closed. The schema guarantees at most one open break.
func (r *SQLiteBreakRepo) GetOpen(ctx context.Context, date string) (*domain.BreakPeriod, error) {
	query := `SELECT ` + breakColumns + ` FROM break_periods
		WHERE session_date = ? AND end_time IS NULL`
	row := r.conn.QueryRowContext(ctx, query, date)
	return r.scanBreak(row)
}

func (r *SQLiteBreakRepo) Close(ctx context.Context, id string, endTime time.Time) error {
	query := `UPDATE break_periods SET end_time = ? WHERE id = ? AND end_time IS NULL`
	res, err := r.conn.ExecContext(ctx, query, endTime.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("closing break period: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking closed rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open break period %s: %w", id, ErrNotFound)
	}
	return nil
}

// Reopen clears a closed break's end time, restoring it as the session's
// open break. Used by the revoke engine to reverse a continue action.
func (r *SQLiteBreakRepo) Reopen(ctx context.Context, id string) error {
	query := `UPDATE break_periods SET end_time = NULL WHERE id = ? AND end_time IS NOT NULL`
	res, err := r.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("reopening break period: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking reopened rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("closed break period %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBreakRepo) Delete(ctx context.Context, id string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM break_periods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting break period: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("break period %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBreakRepo) DeleteBySession(ctx context.Context, date string) error {
	_, err := r.conn.ExecContext(ctx, `DELETE FROM break_periods WHERE session_date = ?`, date)
	if err != nil {
		return fmt.Errorf("deleting breaks for session: %w", err)
	}
	return nil
}

func (r *SQLiteBreakRepo) scanBreak(row *sql.Row) (*domain.BreakPeriod, error) {
	var b domain.BreakPeriod
	var breakType, startStr, createdAtStr string
	var endStr sql.NullString

	err := row.Scan(&b.ID, &b.SessionDate, &breakType, &startStr, &endStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("break period: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning break period: %w", err)
	}

	return r.populateBreak(&b, breakType, startStr, endStr, createdAtStr)
}

func (r *SQLiteBreakRepo) scanBreaks(rows *sql.Rows) ([]*domain.BreakPeriod, error) {
	var breaks []*domain.BreakPeriod
	for rows.Next() {
		var b domain.BreakPeriod
		var breakType, startStr, createdAtStr string
		var endStr sql.NullString

		err := rows.Scan(&b.ID, &b.SessionDate, &breakType, &startStr, &endStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning break row: %w", err)
		}

		populated, parseErr := r.populateBreak(&b, breakType, startStr, endStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		breaks = append(breaks, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breaks: %w", err)
	}
	return breaks, nil
}

// populateBreak fills in parsed fields on a BreakPeriod after scanning raw strings.
func (r *SQLiteBreakRepo) populateBreak(b *domain.BreakPeriod, breakType, startStr string, endStr sql.NullString, createdAtStr string) (*domain.BreakPeriod, error) {
	b.Type = domain.BreakType(breakType)
	b.EndTime = parseNullableTime(endStr, time.RFC3339)

	var parseErr error
	b.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return b, nil
}
