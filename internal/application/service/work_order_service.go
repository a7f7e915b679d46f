package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// firstOrderID is the floor of the legacy numeric sequence. Orders imported
// from the old spreadsheet era stop below it.
const firstOrderID = 5090

// WorkOrderService handles work order operations
type WorkOrderService struct {
	orderRepo repository.WorkOrderRepository
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(orderRepo repository.WorkOrderRepository) *WorkOrderService {
	return &WorkOrderService{orderRepo: orderRepo}
}

// WorkItemInput represents a line item input
type WorkItemInput struct {
	Type            enum.ItemType     `json:"type"`
	Name            string            `json:"name"`
	Quantity        int               `json:"quantity"`
	UnitPrice       float64           `json:"unit_price"`
	CostPrice       float64           `json:"cost_price"`
	Discount        float64           `json:"discount"`
	DiscountType    enum.DiscountType `json:"discount_type"`
	DiscountReason  string            `json:"discount_reason"`
	Buyer           string            `json:"buyer"`
	Provider        string            `json:"provider"`
	PurchaseDocType enum.DocumentType `json:"purchase_doc_type"`

	// Round-tripped on edit so saving an order does not lose ledger state
	IsReimbursed      bool   `json:"is_reimbursed"`
	ReimbursementDate string `json:"reimbursement_date"`
}

// CreateWorkOrderInput represents the input for creating a work order
type CreateWorkOrderInput struct {
	Date                string
	Status              enum.OrderStatus
	DocumentType        enum.DocumentType
	ClientName          string
	ClientPhone         string
	VehicleBrand        string
	VehicleModel        string
	VehiclePlate        string
	VehicleYear         string
	VehicleMileage      int
	VehicleVIN          *string
	Mechanic            string
	Description         string
	IsMaintenance       bool
	ClientProvidesParts bool
	Kind                enum.OrderKind
	ParentOrderID       *string
	Items               []WorkItemInput
}

// CreateWorkOrder creates a new work order with the next sequential id
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, input *CreateWorkOrderInput) (*entity.WorkOrder, error) {
	maxID, err := s.orderRepo.MaxAssignedID(ctx)
	if err != nil {
		return nil, err
	}
	nextID := maxID + 1
	if nextID < firstOrderID {
		nextID = firstOrderID
	}

	if input.Date == "" {
		input.Date = today()
	}
	if input.Status == "" {
		input.Status = enum.OrderStatusPending
	}
	if input.DocumentType == "" {
		input.DocumentType = enum.DocumentCotizacion
	}
	if input.Kind == "" {
		input.Kind = enum.OrderKindNormal
	}

	order := &entity.WorkOrder{
		ID:                  fmt.Sprintf("%d", nextID),
		Date:                input.Date,
		Status:              input.Status,
		DocumentType:        input.DocumentType,
		ClientName:          input.ClientName,
		ClientPhone:         input.ClientPhone,
		VehicleBrand:        input.VehicleBrand,
		VehicleModel:        input.VehicleModel,
		VehiclePlate:        input.VehiclePlate,
		VehicleYear:         input.VehicleYear,
		VehicleMileage:      input.VehicleMileage,
		VehicleVIN:          input.VehicleVIN,
		Mechanic:            input.Mechanic,
		Description:         input.Description,
		IsMaintenance:       input.IsMaintenance,
		ClientProvidesParts: input.ClientProvidesParts,
		Kind:                input.Kind,
		ParentOrderID:       input.ParentOrderID,
		Items:               buildItems(fmt.Sprintf("%d", nextID), input.Items),
	}

	if order.Status == enum.OrderStatusDelivered {
		order.DeliveredAt = today()
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, order.ID)
}

// GetWorkOrder retrieves a work order by ID with its items
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, id string) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}
	return order, nil
}

// ListWorkOrdersInput represents the input for listing work orders
type ListWorkOrdersInput struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	Month      string
	Search     string
}

// ListWorkOrders lists work orders with filtering
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, input *ListWorkOrdersInput) (*pagination.PaginatedResult[entity.WorkOrder], error) {
	params := &repository.WorkOrderFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		Month:      input.Month,
		Search:     input.Search,
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateWorkOrderInput represents the input for updating a work order
type UpdateWorkOrderInput struct {
	ID                  string
	Date                string
	Status              enum.OrderStatus
	DocumentType        enum.DocumentType
	ClientName          string
	ClientPhone         string
	VehicleBrand        string
	VehicleModel        string
	VehiclePlate        string
	VehicleYear         string
	VehicleMileage      int
	VehicleVIN          *string
	Mechanic            string
	Description         string
	IsMaintenance       bool
	ClientProvidesParts bool
	Kind                enum.OrderKind
	ParentOrderID       *string
	Items               []WorkItemInput
}

// UpdateWorkOrder replaces a work order and its full item list
func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, input *UpdateWorkOrderInput) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	order.Date = input.Date
	order.DocumentType = input.DocumentType
	order.ClientName = input.ClientName
	order.ClientPhone = input.ClientPhone
	order.VehicleBrand = input.VehicleBrand
	order.VehicleModel = input.VehicleModel
	order.VehiclePlate = input.VehiclePlate
	order.VehicleYear = input.VehicleYear
	order.VehicleMileage = input.VehicleMileage
	order.VehicleVIN = input.VehicleVIN
	order.Mechanic = input.Mechanic
	order.Description = input.Description
	order.IsMaintenance = input.IsMaintenance
	order.ClientProvidesParts = input.ClientProvidesParts
	order.Kind = input.Kind
	order.ParentOrderID = input.ParentOrderID
	applyStatus(order, input.Status)
	order.Items = buildItems(order.ID, input.Items)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, order.ID)
}

// UpdateWorkOrderStatus changes only the status of a work order
func (s *WorkOrderService) UpdateWorkOrderStatus(ctx context.Context, id string, status enum.OrderStatus) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	applyStatus(order, status)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteWorkOrder deletes a work order and its items
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, id string) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Work order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// ToggleItemReimbursed flips the reimbursement flag on one order line. Moving
// to reimbursed stamps today as the reimbursement date; moving back leaves
// the old date in place as a historical trace.
func (s *WorkOrderService) ToggleItemReimbursed(ctx context.Context, orderID string, itemID uuid.UUID) (*entity.WorkItem, error) {
	item, err := s.orderRepo.GetItem(ctx, orderID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Work order item")
	}

	item.IsReimbursed = !item.IsReimbursed
	if item.IsReimbursed {
		item.ReimbursementDate = today()
	}

	if err := s.orderRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// applyStatus sets the status and keeps the delivery date consistent with it:
// entering delivered stamps today unless a date already exists, leaving
// delivered clears it.
func applyStatus(order *entity.WorkOrder, status enum.OrderStatus) {
	if status == enum.OrderStatusDelivered {
		if order.DeliveredAt == "" {
			order.DeliveredAt = today()
		}
	} else {
		order.DeliveredAt = ""
	}
	order.Status = status
}

func buildItems(orderID string, inputs []WorkItemInput) []entity.WorkItem {
	items := make([]entity.WorkItem, 0, len(inputs))
	for i, in := range inputs {
		itemType := in.Type
		if itemType == "" {
			itemType = enum.ItemPart
		}
		discountType := in.DiscountType
		if discountType == "" {
			discountType = enum.DiscountAmount
		}
		items = append(items, entity.WorkItem{
			OrderID:           orderID,
			Position:          i,
			Type:              itemType,
			Name:              in.Name,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			CostPrice:         in.CostPrice,
			Discount:          in.Discount,
			DiscountType:      discountType,
			DiscountReason:    in.DiscountReason,
			Buyer:             in.Buyer,
			Provider:          in.Provider,
			PurchaseDocType:   in.PurchaseDocType,
			IsReimbursed:      in.IsReimbursed,
			ReimbursementDate: in.ReimbursementDate,
		})
	}
	return items
}

// today returns the current date in the ISO form the store uses everywhere.
func today() string {
	return time.Now().Format("2006-01-02")
}
