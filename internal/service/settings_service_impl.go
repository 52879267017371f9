package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

// NewSettingsService creates the configuration surface consumed by the
// core. A missing settings row falls back to compiled defaults.
func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *settingsService) Update(ctx context.Context, cfg *domain.Settings) error {
	if cfg.WorkNormSeconds <= 0 {
		return fmt.Errorf("work norm must be positive, got %d", cfg.WorkNormSeconds)
	}
	if !domain.ValidBreakTypes[string(cfg.DefaultBreakType)] {
		return fmt.Errorf("unknown break type %q", cfg.DefaultBreakType)
	}
	return s.settings.Upsert(ctx, cfg)
}
