package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateAppointment creates a new appointment
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		ClientName string `json:"client_name" binding:"required"`
		Plate      string `json:"plate"`
		Issue      string `json:"issue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		Plate:      req.Plate,
		Issue:      req.Issue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment created successfully", appointment)
}

// ListAppointments lists appointments with filters
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	input := &service.ListAppointmentsInput{
		Date: c.Query("date"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.AppointmentStatus(statusStr)
		if !status.Valid() {
			response.BadRequest(c, "Invalid appointment status")
			return
		}
		input.Status = &status
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointments retrieved successfully", appointments)
}

// UpdateAppointmentStatus changes the status of an appointment
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		Status enum.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "Invalid appointment status")
		return
	}

	appointment, err := h.appointmentService.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment deletes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully", nil)
}
