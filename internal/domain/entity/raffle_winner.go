package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RaffleWinner is the immutable record of a promotional draw. Only the draw
// creates one; afterwards it can be deleted or have its redemption toggled,
// never edited.
type RaffleWinner struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date           string    `gorm:"size:10;not null" json:"date"`
	ClientName     string    `gorm:"size:255;not null" json:"client_name"`
	ClientPhone    string    `gorm:"size:50" json:"client_phone"`
	Prize          string    `gorm:"size:255;not null" json:"prize"`
	IsRedeemed     bool      `gorm:"default:false" json:"is_redeemed"`
	RedemptionDate string    `gorm:"size:10" json:"redemption_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new winner record
func (w *RaffleWinner) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RaffleWinner model
func (RaffleWinner) TableName() string {
	return "raffle_winners"
}
