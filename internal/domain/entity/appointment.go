package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a scheduled workshop visit. It has no hard link to a
// work order; matching happens informally by client name or plate.
type Appointment struct {
	ID         uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	Date       string                 `gorm:"size:10;not null;index" json:"date"`
	Time       string                 `gorm:"size:5" json:"time"`
	ClientName string                 `gorm:"size:255;not null" json:"client_name"`
	Plate      string                 `gorm:"size:20" json:"plate"`
	Issue      string                 `gorm:"type:text" json:"issue"`
	Status     enum.AppointmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
