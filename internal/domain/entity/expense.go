package entity

import (
	"time"

	"github.com/tallerlab/taller-api/internal/domain/enum"
)

// Expense represents a standalone outlay not tied to any work order.
// Identifiers follow the legacy "G<n>" sequence ("G5090", "G5091", ...).
type Expense struct {
	ID           string               `gorm:"size:20;primaryKey" json:"id"`
	Date         string               `gorm:"size:10;not null;index" json:"date"`
	Amount       float64              `gorm:"type:decimal(15,2);default:0" json:"amount"`
	DocumentType enum.DocumentType    `gorm:"size:20;not null;default:'boleta'" json:"document_type"`
	Category     enum.ExpenseCategory `gorm:"size:20;not null;default:'general'" json:"category"`
	BuyerName    string               `gorm:"size:255" json:"buyer_name"`
	Provider     string               `gorm:"size:255" json:"provider"`
	IsPaid       bool                 `gorm:"default:false" json:"is_paid"`
	PaymentDate  string               `gorm:"size:10" json:"payment_date,omitempty"`
	Notes        string               `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
