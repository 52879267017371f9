package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT work_norm_seconds, default_break_type
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var breakType string
	err := row.Scan(&s.WorkNormSeconds, &breakType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.DefaultBreakType = domain.BreakType(breakType)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, work_norm_seconds, default_break_type)
		VALUES ('default', ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.WorkNormSeconds,
		string(s.DefaultBreakType),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
