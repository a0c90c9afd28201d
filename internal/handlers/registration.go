package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/dto"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/middleware"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/services"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Register admits a player or team into a tournament
func (h *RegistrationHandler) Register(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	var req struct {
		PlayerID *uint64 `json:"player_id"`
		TeamID   *uint64 `json:"team_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	reg, err := h.registrationService.Register(services.RegistrationInput{
		TournamentID: tournamentID,
		PlayerID:     req.PlayerID,
		TeamID:       req.TeamID,
	}, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationDTO(*reg))
}

// ListRegistrations returns a tournament's registrations
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	var status *models.RegistrationStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.RegistrationStatus(statusStr)
		status = &s
	}

	regs, err := h.registrationService.ListRegistrations(tournamentID, status)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDTOs(regs))
}

// UpdateStatus changes a registration's lifecycle status
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	registrationID, err := strconv.ParseUint(c.Param("registrationId"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid registration ID")
		return
	}

	var req struct {
		Status models.RegistrationStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED REJECTED WITHDRAWN"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	reg, err := h.registrationService.UpdateStatus(registrationID, req.Status, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDTO(*reg))
}

// Delete hard-removes a pending registration
func (h *RegistrationHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	registrationID, err := strconv.ParseUint(c.Param("registrationId"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid registration ID")
		return
	}

	if err := h.registrationService.Delete(tournamentID, registrationID, actor); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration cancelled successfully"})
}
