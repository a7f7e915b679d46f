package service

import (
	"context"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/repository"
)

// defaultSettings are the factory values shown until the operator customizes
// them. Reads merge field by field so a partially saved config still renders.
var defaultSettings = entity.WorkshopSettings{
	Name:     "Taller Mecánico",
	Subtitle: "Servicio Automotriz",
	Address:  "",
	Phone:    "",
	Email:    "",
}

// SettingsService handles the singleton workshop configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the stored settings with defaults filled in for any
// field the stored row left empty
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.WorkshopSettings, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := defaultSettings
	if stored != nil {
		merged = *stored
		if merged.Name == "" {
			merged.Name = defaultSettings.Name
		}
		if merged.Subtitle == "" {
			merged.Subtitle = defaultSettings.Subtitle
		}
	}
	return &merged, nil
}

// UpdateSettingsInput represents the input for updating workshop settings
type UpdateSettingsInput struct {
	Name     string
	Subtitle string
	Address  string
	Phone    string
	Email    string
	Logo     *string
}

// UpdateSettings overwrites the singleton settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.WorkshopSettings, error) {
	settings := &entity.WorkshopSettings{
		Name:     input.Name,
		Subtitle: input.Subtitle,
		Address:  input.Address,
		Phone:    input.Phone,
		Email:    input.Email,
		Logo:     input.Logo,
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx)
}
