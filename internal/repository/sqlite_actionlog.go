package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

// actionLogColumns is the canonical SELECT column list for action_log.
const actionLogColumns = `id, session_date, seq, action, timestamp,
		prev_status, prev_start_time, prev_end_time,
		prev_work_seconds, prev_break_seconds, prev_overtime_seconds,
		break_id, break_type, break_start_time, break_end_time,
		revoked_seqs, created_at`

// SQLiteActionLogRepo implements ActionLogRepo using a SQLite database.
// The table is append-only: there is deliberately no update or delete.
type SQLiteActionLogRepo struct {
	conn db.DBTX
}

// NewSQLiteActionLogRepo creates a new SQLiteActionLogRepo.
func NewSQLiteActionLogRepo(conn db.DBTX) *SQLiteActionLogRepo {
	return &SQLiteActionLogRepo{conn: conn}
}

func (r *SQLiteActionLogRepo) Append(ctx context.Context, e *domain.ActionLogEntry) error {
	var breakType interface{}
	if e.Snapshot.BreakType != nil {
		breakType = string(*e.Snapshot.BreakType)
	}

	query := `INSERT INTO action_log (session_date, seq, action, timestamp,
		prev_status, prev_start_time, prev_end_time,
		prev_work_seconds, prev_break_seconds, prev_overtime_seconds,
		break_id, break_type, break_start_time, break_end_time,
		revoked_seqs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.conn.ExecContext(ctx, query,
		e.SessionDate,
		e.Seq,
		string(e.Action),
		e.Timestamp.Format(time.RFC3339),
		string(e.Snapshot.Status),
		nullableTimeToString(e.Snapshot.StartTime, time.RFC3339),
		nullableTimeToString(e.Snapshot.EndTime, time.RFC3339),
		e.Snapshot.WorkSeconds,
		e.Snapshot.BreakSeconds,
		e.Snapshot.OvertimeSeconds,
		nullableString(e.Snapshot.BreakID),
		breakType,
		nullableTimeToString(e.Snapshot.BreakStartTime, time.RFC3339),
		nullableTimeToString(e.Snapshot.BreakEndTime, time.RFC3339),
		encodeSeqs(e.RevokedSeqs),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending action log entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading appended entry id: %w", err)
	}
	e.ID = id
	return nil
}

// Tail returns the most recent n entries for the session, newest first.
func (r *SQLiteActionLogRepo) Tail(ctx context.Context, date string, n int) ([]*domain.ActionLogEntry, error) {
	query := `SELECT ` + actionLogColumns + ` FROM action_log
		WHERE session_date = ? ORDER BY seq DESC LIMIT ?`
	rows, err := r.conn.QueryContext(ctx, query, date, n)
	if err != nil {
		return nil, fmt.Errorf("reading action log tail: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

// ListBySession returns all entries for the session in seq order.
func (r *SQLiteActionLogRepo) ListBySession(ctx context.Context, date string) ([]*domain.ActionLogEntry, error) {
	query := `SELECT ` + actionLogColumns + ` FROM action_log
		WHERE session_date = ? ORDER BY seq`
	rows, err := r.conn.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing action log entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

// NextSeq returns the next unused seq value for the session. Seqs are
// strictly increasing and survive a day reset.
func (r *SQLiteActionLogRepo) NextSeq(ctx context.Context, date string) (int, error) {
	var next int
	row := r.conn.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM action_log WHERE session_date = ?`, date)
	if err := row.Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next seq: %w", err)
	}
	return next, nil
}

func (r *SQLiteActionLogRepo) scanEntries(rows *sql.Rows) ([]*domain.ActionLogEntry, error) {
	var entries []*domain.ActionLogEntry
	for rows.Next() {
		var e domain.ActionLogEntry
		var action, prevStatus, timestampStr, createdAtStr, revokedSeqs string
		var prevStart, prevEnd, breakID, breakType, breakStart, breakEnd sql.NullString

		err := rows.Scan(
			&e.ID, &e.SessionDate, &e.Seq, &action, &timestampStr,
			&prevStatus, &prevStart, &prevEnd,
			&e.Snapshot.WorkSeconds, &e.Snapshot.BreakSeconds, &e.Snapshot.OvertimeSeconds,
			&breakID, &breakType, &breakStart, &breakEnd,
			&revokedSeqs, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning action log row: %w", err)
		}

		e.Action = domain.ActionType(action)
		e.Snapshot.Status = domain.SessionStatus(prevStatus)
		e.Snapshot.StartTime = parseNullableTime(prevStart, time.RFC3339)
		e.Snapshot.EndTime = parseNullableTime(prevEnd, time.RFC3339)
		if breakID.Valid {
			id := breakID.String
			e.Snapshot.BreakID = &id
		}
		if breakType.Valid && breakType.String != "" {
			bt := domain.BreakType(breakType.String)
			e.Snapshot.BreakType = &bt
		}
		e.Snapshot.BreakStartTime = parseNullableTime(breakStart, time.RFC3339)
		e.Snapshot.BreakEndTime = parseNullableTime(breakEnd, time.RFC3339)
		e.RevokedSeqs = decodeSeqs(revokedSeqs)

		e.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action log entries: %w", err)
	}
	return entries, nil
}
