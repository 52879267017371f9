package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

// sessionColumns is the canonical SELECT column list for work_sessions.
const sessionColumns = `date, status, start_time, end_time,
		work_seconds, break_seconds, work_norm_seconds, overtime_seconds,
		created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	conn db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. It accepts a DBTX
// so the same repo type works inside and outside a transaction.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{conn: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (date, status, start_time, end_time,
		work_seconds, break_seconds, work_norm_seconds, overtime_seconds, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		s.Date,
		string(s.Status),
		nullableTimeToString(s.StartTime, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		s.WorkSeconds,
		s.BreakSeconds,
		s.WorkNormSeconds,
		s.OvertimeSeconds,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByDate(ctx context.Context, date string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE date = ?`
	row := r.conn.QueryRowContext(ctx, query, date)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions SET status = ?, start_time = ?, end_time = ?,
		work_seconds = ?, break_seconds = ?, work_norm_seconds = ?, overtime_seconds = ?,
		updated_at = ?
		WHERE date = ?`
	res, err := r.conn.ExecContext(ctx, query,
		string(s.Status),
		nullableTimeToString(s.StartTime, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		s.WorkSeconds,
		s.BreakSeconds,
		s.WorkNormSeconds,
		s.OvertimeSeconds,
		s.UpdatedAt.Format(time.RFC3339),
		s.Date,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work session %s: %w", s.Date, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListRange(ctx context.Context, from, to string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.conn.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkSession
	for rows.Next() {
		s, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var status, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := row.Scan(
		&s.Date, &status, &startStr, &endStr,
		&s.WorkSeconds, &s.BreakSeconds, &s.WorkNormSeconds, &s.OvertimeSeconds,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	return r.populateSession(&s, status, startStr, endStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteSessionRepo) scanSessionRow(rows *sql.Rows) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var status, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := rows.Scan(
		&s.Date, &status, &startStr, &endStr,
		&s.WorkSeconds, &s.BreakSeconds, &s.WorkNormSeconds, &s.OvertimeSeconds,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning work session row: %w", err)
	}

	return r.populateSession(&s, status, startStr, endStr, createdAtStr, updatedAtStr)
}

// populateSession fills in parsed fields on a WorkSession after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.WorkSession, status string, startStr, endStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.WorkSession, error) {
	s.Status = domain.SessionStatus(status)
	s.StartTime = parseNullableTime(startStr, time.RFC3339)
	s.EndTime = parseNullableTime(endStr, time.RFC3339)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
