package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WorkOrder represents a repair ticket (OT). Identifiers are the legacy
// numeric-looking strings ("5090", "5091", ...) assigned sequentially.
type WorkOrder struct {
	ID           string            `gorm:"size:20;primaryKey" json:"id"`
	Date         string            `gorm:"size:10;not null;index" json:"date"`
	DeliveredAt  string            `gorm:"size:10" json:"delivered_at,omitempty"`
	Status       enum.OrderStatus  `gorm:"size:20;not null;default:'pending'" json:"status"`
	DocumentType enum.DocumentType `gorm:"size:20;not null;default:'cotizacion'" json:"document_type"`

	ClientName  string `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string `gorm:"size:50" json:"client_phone"`

	VehicleBrand   string  `gorm:"size:100" json:"vehicle_brand"`
	VehicleModel   string  `gorm:"size:100" json:"vehicle_model"`
	VehiclePlate   string  `gorm:"size:20;index" json:"vehicle_plate"`
	VehicleYear    string  `gorm:"size:10" json:"vehicle_year"`
	VehicleMileage int     `gorm:"default:0" json:"vehicle_mileage"`
	VehicleVIN     *string `gorm:"size:50" json:"vehicle_vin,omitempty"`

	Mechanic    string `gorm:"size:255" json:"mechanic"`
	Description string `gorm:"type:text" json:"description"`

	IsMaintenance       bool `gorm:"default:false" json:"is_maintenance"`
	ClientProvidesParts bool `gorm:"default:false" json:"client_provides_parts"`

	Kind          enum.OrderKind `gorm:"size:20;not null;default:'normal'" json:"kind"`
	ParentOrderID *string        `gorm:"size:20" json:"parent_order_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items []WorkItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for the WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}

// WorkItem represents a line in a work order: a part or labor sold to the
// client, or an internal expense fronted by whoever bought it. CostPrice and
// the buyer/reimbursement fields are only meaningful for part and expense
// lines; labor carries no internal cost.
type WorkItem struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	OrderID  string        `gorm:"size:20;not null;index" json:"order_id"`
	Position int           `gorm:"not null;default:0" json:"position"`
	Type     enum.ItemType `gorm:"size:20;not null" json:"type"`
	Name     string        `gorm:"size:255;not null" json:"name"`

	Quantity  int     `gorm:"not null;default:0" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	CostPrice float64 `gorm:"type:decimal(15,2);default:0" json:"cost_price"`

	Discount       float64           `gorm:"type:decimal(15,2);default:0" json:"discount"`
	DiscountType   enum.DiscountType `gorm:"size:20;default:'amount'" json:"discount_type"`
	DiscountReason string            `gorm:"size:255" json:"discount_reason"`

	Buyer             string            `gorm:"size:255" json:"buyer"`
	Provider          string            `gorm:"size:255" json:"provider"`
	PurchaseDocType   enum.DocumentType `gorm:"size:20" json:"purchase_doc_type,omitempty"`
	IsReimbursed      bool              `gorm:"default:false" json:"is_reimbursed"`
	ReimbursementDate string            `gorm:"size:10" json:"reimbursement_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new work item
func (i *WorkItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkItem model
func (WorkItem) TableName() string {
	return "work_items"
}
