package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerlab/taller-api/internal/domain/entity"
)

func TestGetSettingsReturnsDefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultSettings.Name, settings.Name)
	assert.Equal(t, defaultSettings.Subtitle, settings.Subtitle)
}

func TestGetSettingsMergesMissingFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSettingsRepo()
	repo.Save(ctx, &entity.WorkshopSettings{Address: "Av. Matta 123", Phone: "+56 9 1234 5678"})
	svc := NewSettingsService(repo)

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	// Stored fields win, empty ones fall back
	assert.Equal(t, "Av. Matta 123", settings.Address)
	assert.Equal(t, defaultSettings.Name, settings.Name)
}

func TestUpdateSettingsOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		Name:     "Taller Sur",
		Subtitle: "Mecanica general",
		Phone:    "+56 2 2345 6789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Taller Sur", settings.Name)
	assert.Equal(t, "+56 2 2345 6789", settings.Phone)
}
