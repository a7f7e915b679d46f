package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopSettings is the singleton workshop configuration shown on printed
// documents. Reads go through SettingsService, which fills missing fields from
// defaults so configs saved by older versions keep working.
type WorkshopSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	Name      string    `gorm:"size:255" json:"name"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	Address   string    `gorm:"size:255" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Logo      *string   `gorm:"type:text" json:"logo,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *WorkshopSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkshopSettings model
func (WorkshopSettings) TableName() string {
	return "workshop_settings"
}
