package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/dto"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/middleware"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/services"
	"github.com/ismavld/esport-tournament/internal/utils"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// ListTournaments returns tournaments with filters and pagination
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTournamentsInput{
		Page:  params.Page,
		Limit: params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TournamentStatus(statusStr)
		if !status.Valid() {
			apierrors.RespondBadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}
	if game := c.Query("game"); game != "" {
		input.Game = &game
	}
	if formatStr := c.Query("format"); formatStr != "" {
		format := models.TournamentFormat(formatStr)
		if !format.Valid() {
			apierrors.RespondBadRequest(c, "Invalid format filter")
			return
		}
		input.Format = &format
	}

	tournaments, total, err := h.tournamentService.ListTournaments(input)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentListResponse(tournaments, params, total))
}

// GetTournament returns a single tournament with registrations
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	t, err := h.tournamentService.GetTournament(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentDTO(*t))
}

// CreateTournament creates a new tournament in DRAFT
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name            string                  `json:"name" binding:"required"`
		Game            string                  `json:"game" binding:"required"`
		Format          models.TournamentFormat `json:"format" binding:"required,oneof=SOLO TEAM"`
		MaxParticipants int                     `json:"max_participants" binding:"required,gt=0"`
		PrizePool       float64                 `json:"prize_pool" binding:"omitempty,gte=0"`
		StartDate       time.Time               `json:"start_date" binding:"required"`
		EndDate         *time.Time              `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	t, err := h.tournamentService.CreateTournament(services.CreateTournamentInput{
		Name:            req.Name,
		Game:            req.Game,
		Format:          req.Format,
		MaxParticipants: req.MaxParticipants,
		PrizePool:       req.PrizePool,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		OrganizerID:     actor.UserID,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTournamentDTO(*t))
}

// UpdateTournament applies a partial update to a tournament
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	var req struct {
		Name            *string    `json:"name"`
		Game            *string    `json:"game"`
		MaxParticipants *int       `json:"max_participants" binding:"omitempty,gt=0"`
		PrizePool       *float64   `json:"prize_pool" binding:"omitempty,gte=0"`
		StartDate       *time.Time `json:"start_date"`
		EndDate         *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	t, err := h.tournamentService.UpdateTournament(id, services.UpdateTournamentInput{
		Name:            req.Name,
		Game:            req.Game,
		MaxParticipants: req.MaxParticipants,
		PrizePool:       req.PrizePool,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentDTO(*t))
}

// DeleteTournament removes a tournament
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	if err := h.tournamentService.DeleteTournament(id, actor); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted successfully"})
}

// UpdateStatus changes a tournament's lifecycle status
func (h *TournamentHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	var req struct {
		Status models.TournamentStatus `json:"status" binding:"required,oneof=DRAFT OPEN ONGOING COMPLETED CANCELLED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	t, err := h.tournamentService.UpdateStatus(id, req.Status, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentDTO(*t))
}
