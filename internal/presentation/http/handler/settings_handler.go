package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles workshop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the workshop settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the workshop settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Name     string  `json:"name"`
		Subtitle string  `json:"subtitle"`
		Address  string  `json:"address"`
		Phone    string  `json:"phone"`
		Email    string  `json:"email"`
		Logo     *string `json:"logo"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		Name:     req.Name,
		Subtitle: req.Subtitle,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Logo:     req.Logo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
