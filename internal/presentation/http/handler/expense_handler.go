package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// ExpenseHandler handles standalone expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type expenseRequest struct {
	Date         string               `json:"date"`
	Amount       float64              `json:"amount"`
	DocumentType enum.DocumentType    `json:"document_type"`
	Category     enum.ExpenseCategory `json:"category"`
	BuyerName    string               `json:"buyer_name"`
	Provider     string               `json:"provider"`
	Notes        string               `json:"notes"`
}

func (r *expenseRequest) validate() string {
	if r.DocumentType != "" && !r.DocumentType.Valid() {
		return "Invalid document type"
	}
	if r.Category != "" && !r.Category.Valid() {
		return "Invalid expense category"
	}
	return ""
}

// CreateExpense creates a new expense
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		Date:         req.Date,
		Amount:       req.Amount,
		DocumentType: req.DocumentType,
		Category:     req.Category,
		BuyerName:    req.BuyerName,
		Provider:     req.Provider,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// GetExpense retrieves an expense by ID
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// ListExpenses lists expenses with filters
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	paginationParams := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(paginationParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListExpensesInput{
		Pagination: paginationParams,
		Month:      c.Query("month"),
		OnlyUnpaid: c.Query("unpaid") == "true",
	}
	if categoryStr := c.Query("category"); categoryStr != "" {
		category := enum.ExpenseCategory(categoryStr)
		if !category.Valid() {
			response.BadRequest(c, "Invalid expense category")
			return
		}
		input.Category = &category
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// UpdateExpense updates an existing expense
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), &service.UpdateExpenseInput{
		ID:           c.Param("id"),
		Date:         req.Date,
		Amount:       req.Amount,
		DocumentType: req.DocumentType,
		Category:     req.Category,
		BuyerName:    req.BuyerName,
		Provider:     req.Provider,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// DeleteExpense deletes an expense
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// TogglePaid flips the paid state of an expense
func (h *ExpenseHandler) TogglePaid(c *gin.Context) {
	expense, err := h.expenseService.TogglePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense payment toggled successfully", expense)
}
