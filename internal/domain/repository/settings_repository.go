package repository

import (
	"context"

	"github.com/tallerlab/taller-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the singleton workshop settings
type SettingsRepository interface {
	// Get returns the stored settings row, or nil when none has been saved yet
	Get(ctx context.Context) (*entity.WorkshopSettings, error)
	// Save creates or updates the singleton row
	Save(ctx context.Context, settings *entity.WorkshopSettings) error
}
