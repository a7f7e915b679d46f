package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/domain/finance"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// LedgerHandler serves the consolidated reimbursement ledger
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// GetLedger returns the ledger; ?filter=pending narrows to unpaid entries
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	onlyPending := c.Query("filter") == "pending"

	view, err := h.ledgerService.GetLedger(c.Request.Context(), onlyPending)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", view)
}

// ToggleEntry flips the paid state of one ledger entry
func (h *LedgerHandler) ToggleEntry(c *gin.Context) {
	var req struct {
		Origin    string `json:"origin" binding:"required"`
		ExpenseID string `json:"expense_id"`
		OrderID   string `json:"order_id"`
		ItemID    string `json:"item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.ToggleLedgerEntryInput{
		Origin:    finance.LedgerOrigin(req.Origin),
		ExpenseID: req.ExpenseID,
		OrderID:   req.OrderID,
	}
	if req.ItemID != "" {
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			response.BadRequest(c, "Invalid item ID")
			return
		}
		input.ItemID = itemID
	}

	if err := h.ledgerService.ToggleEntry(c.Request.Context(), input); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger entry toggled successfully", nil)
}
