package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/presentation/http/dto/response"
)

// RaffleHandler handles raffle HTTP requests
type RaffleHandler struct {
	raffleService *service.RaffleService
}

// NewRaffleHandler creates a new raffle handler
func NewRaffleHandler(raffleService *service.RaffleService) *RaffleHandler {
	return &RaffleHandler{raffleService: raffleService}
}

// Draw performs a raffle draw among the workshop's clients
func (h *RaffleHandler) Draw(c *gin.Context) {
	var req struct {
		Prize string `json:"prize" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Prize is required")
		return
	}

	winner, err := h.raffleService.Draw(c.Request.Context(), req.Prize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Raffle drawn successfully", winner)
}

// ListWinners lists every winner record
func (h *RaffleHandler) ListWinners(c *gin.Context) {
	winners, err := h.raffleService.ListWinners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Winners retrieved successfully", winners)
}

// ToggleRedeemed flips the redemption state of a winner record
func (h *RaffleHandler) ToggleRedeemed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid winner ID")
		return
	}

	winner, err := h.raffleService.ToggleRedeemed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Winner redemption toggled successfully", winner)
}

// DeleteWinner deletes a winner record
func (h *RaffleHandler) DeleteWinner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid winner ID")
		return
	}

	if err := h.raffleService.DeleteWinner(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Winner deleted successfully", nil)
}
