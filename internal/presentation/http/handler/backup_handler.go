package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// maxBackupSize caps import payloads at 50 MB
const maxBackupSize = 50 << 20

// BackupHandler handles full-store export and restore
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export returns a snapshot of every collection
func (h *BackupHandler) Export(c *gin.Context) {
	backup, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="respaldo-taller.json"`)
	c.JSON(200, backup)
}

// Import restores collections from an uploaded backup file
func (h *BackupHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		response.BadRequest(c, "Could not read backup payload")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup restored successfully", nil)
}
