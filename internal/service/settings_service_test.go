package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetAndUpdate(t *testing.T) {
	svc := NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 27000, cfg.WorkNormSeconds)

	cfg.WorkNormSeconds = 21600
	cfg.DefaultBreakType = domain.BreakCoffee
	require.NoError(t, svc.Update(ctx, cfg))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 21600, got.WorkNormSeconds)
	assert.Equal(t, domain.BreakCoffee, got.DefaultBreakType)
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	svc := NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	err := svc.Update(ctx, &domain.Settings{WorkNormSeconds: 0, DefaultBreakType: domain.BreakGeneral})
	assert.Error(t, err)

	err = svc.Update(ctx, &domain.Settings{WorkNormSeconds: 27000, DefaultBreakType: domain.BreakType("nap")})
	assert.Error(t, err)
}
