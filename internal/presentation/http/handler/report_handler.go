package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler streams the xlsx report workbook
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Download generates and streams the report; ?month=YYYY-MM narrows the scope
func (h *ReportHandler) Download(c *gin.Context) {
	buf, name, err := h.reportService.GenerateWorkbook(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(200, xlsxContentType, buf.Bytes())
}
