package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// WorkOrderFilterParams holds filtering options for listing work orders
type WorkOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	Month      string // "YYYY-MM" prefix filter
	Search     string // client name, plate or order id
}

// WorkOrderRepository defines the interface for work order data operations
type WorkOrderRepository interface {
	Create(ctx context.Context, order *entity.WorkOrder) error
	// GetByID returns the order with its items, or nil when absent
	GetByID(ctx context.Context, id string) (*entity.WorkOrder, error)
	// Update replaces the order row and its full item list
	Update(ctx context.Context, order *entity.WorkOrder) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *WorkOrderFilterParams) ([]entity.WorkOrder, int64, error)
	// ListAll returns every order with items, ordered by date descending
	ListAll(ctx context.Context) ([]entity.WorkOrder, error)
	// ListByMonth returns orders whose date carries the "YYYY-MM" prefix
	ListByMonth(ctx context.Context, yearMonth string) ([]entity.WorkOrder, error)
	// MaxAssignedID returns the highest purely numeric order id, 0 when none
	MaxAssignedID(ctx context.Context) (int, error)
	GetItem(ctx context.Context, orderID string, itemID uuid.UUID) (*entity.WorkItem, error)
	SaveItem(ctx context.Context, item *entity.WorkItem) error
	// ReplaceAll swaps the entire collection in one transaction (backup restore)
	ReplaceAll(ctx context.Context, orders []entity.WorkOrder) error
}
