package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the monthly summary and F29 estimate views
type DashboardHandler struct {
	summaryService *service.SummaryService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(summaryService *service.SummaryService) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// GetMonthlySummary returns the aggregated figures for one month
// @Summary Monthly summary
// @Description Sales, cost, IVA and profit figures for a "YYYY-MM" month
// @Tags dashboard
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {object} response.APIResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetMonthlySummary(c *gin.Context) {
	summary, err := h.summaryService.MonthlySummary(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly summary retrieved successfully", summary)
}

// GetF29Estimate returns the estimated F29 declaration for one month
func (h *DashboardHandler) GetF29Estimate(c *gin.Context) {
	view, err := h.summaryService.F29Estimate(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "F29 estimate retrieved successfully", view)
}
