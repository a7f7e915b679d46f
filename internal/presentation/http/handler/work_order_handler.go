package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// WorkOrderHandler handles work order HTTP requests
type WorkOrderHandler struct {
	orderService *service.WorkOrderService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(orderService *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{orderService: orderService}
}

// workOrderRequest is the shared payload for create and update
type workOrderRequest struct {
	Date                string                  `json:"date"`
	Status              enum.OrderStatus        `json:"status"`
	DocumentType        enum.DocumentType       `json:"document_type"`
	ClientName          string                  `json:"client_name" binding:"required"`
	ClientPhone         string                  `json:"client_phone"`
	VehicleBrand        string                  `json:"vehicle_brand"`
	VehicleModel        string                  `json:"vehicle_model"`
	VehiclePlate        string                  `json:"vehicle_plate"`
	VehicleYear         string                  `json:"vehicle_year"`
	VehicleMileage      int                     `json:"vehicle_mileage"`
	VehicleVIN          *string                 `json:"vehicle_vin"`
	Mechanic            string                  `json:"mechanic"`
	Description         string                  `json:"description"`
	IsMaintenance       bool                    `json:"is_maintenance"`
	ClientProvidesParts bool                    `json:"client_provides_parts"`
	Kind                enum.OrderKind          `json:"kind"`
	ParentOrderID       *string                 `json:"parent_order_id"`
	Items               []service.WorkItemInput `json:"items"`
}

func (r *workOrderRequest) validate() string {
	if r.Status != "" && !r.Status.Valid() {
		return "Invalid order status"
	}
	if r.DocumentType != "" && !r.DocumentType.Valid() {
		return "Invalid document type"
	}
	if r.Kind != "" && !r.Kind.Valid() {
		return "Invalid order kind"
	}
	for _, item := range r.Items {
		if item.Type != "" && !item.Type.Valid() {
			return "Invalid item type"
		}
		if item.DiscountType != "" && !item.DiscountType.Valid() {
			return "Invalid discount type"
		}
	}
	return ""
}

// CreateWorkOrder creates a new work order
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req workOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	order, err := h.orderService.CreateWorkOrder(c.Request.Context(), &service.CreateWorkOrderInput{
		Date:                req.Date,
		Status:              req.Status,
		DocumentType:        req.DocumentType,
		ClientName:          req.ClientName,
		ClientPhone:         req.ClientPhone,
		VehicleBrand:        req.VehicleBrand,
		VehicleModel:        req.VehicleModel,
		VehiclePlate:        req.VehiclePlate,
		VehicleYear:         req.VehicleYear,
		VehicleMileage:      req.VehicleMileage,
		VehicleVIN:          req.VehicleVIN,
		Mechanic:            req.Mechanic,
		Description:         req.Description,
		IsMaintenance:       req.IsMaintenance,
		ClientProvidesParts: req.ClientProvidesParts,
		Kind:                req.Kind,
		ParentOrderID:       req.ParentOrderID,
		Items:               req.Items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Work order created successfully", order)
}

// GetWorkOrder retrieves a work order by ID
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.orderService.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order retrieved successfully", order)
}

// ListWorkOrders lists work orders with filters
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	paginationParams := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(paginationParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListWorkOrdersInput{
		Pagination: paginationParams,
		Month:      c.Query("month"),
		Search:     c.Query("search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.OrderStatus(statusStr)
		if !status.Valid() {
			response.BadRequest(c, "Invalid order status")
			return
		}
		input.Status = &status
	}

	result, err := h.orderService.ListWorkOrders(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Work orders retrieved successfully", result)
}

// UpdateWorkOrder replaces a work order and its items
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	var req workOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	order, err := h.orderService.UpdateWorkOrder(c.Request.Context(), &service.UpdateWorkOrderInput{
		ID:                  c.Param("id"),
		Date:                req.Date,
		Status:              req.Status,
		DocumentType:        req.DocumentType,
		ClientName:          req.ClientName,
		ClientPhone:         req.ClientPhone,
		VehicleBrand:        req.VehicleBrand,
		VehicleModel:        req.VehicleModel,
		VehiclePlate:        req.VehiclePlate,
		VehicleYear:         req.VehicleYear,
		VehicleMileage:      req.VehicleMileage,
		VehicleVIN:          req.VehicleVIN,
		Mechanic:            req.Mechanic,
		Description:         req.Description,
		IsMaintenance:       req.IsMaintenance,
		ClientProvidesParts: req.ClientProvidesParts,
		Kind:                req.Kind,
		ParentOrderID:       req.ParentOrderID,
		Items:               req.Items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order updated successfully", order)
}

// UpdateWorkOrderStatus changes only the status of a work order
func (h *WorkOrderHandler) UpdateWorkOrderStatus(c *gin.Context) {
	var req struct {
		Status enum.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "Invalid order status")
		return
	}

	order, err := h.orderService.UpdateWorkOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order status updated successfully", order)
}

// DeleteWorkOrder deletes a work order
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	if err := h.orderService.DeleteWorkOrder(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order deleted successfully", nil)
}

// ToggleItemReimbursed flips the reimbursement state of one order line
func (h *WorkOrderHandler) ToggleItemReimbursed(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.orderService.ToggleItemReimbursed(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item reimbursement toggled successfully", item)
}
