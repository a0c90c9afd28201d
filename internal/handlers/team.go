package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/dto"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/middleware"
	"github.com/ismavld/esport-tournament/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListTeams returns all teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTOs(teams))
}

// GetTeam returns a single team
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid team ID")
		return
	}

	team, err := h.teamService.GetTeam(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// CreateTeam creates a new team captained by the current user
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,min=3,max=50"`
		Tag  string `json:"tag" binding:"required,min=3,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name: req.Name,
		Tag:  req.Tag,
	}, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// UpdateTeam updates a team's name or tag
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid team ID")
		return
	}

	var req struct {
		Name *string `json:"name" binding:"omitempty,min=3,max=50"`
		Tag  *string `json:"tag" binding:"omitempty,min=3,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	team, err := h.teamService.UpdateTeam(id, services.UpdateTeamInput{
		Name: req.Name,
		Tag:  req.Tag,
	}, actor)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// DeleteTeam removes a team
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.RespondUnauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid team ID")
		return
	}

	if err := h.teamService.DeleteTeam(id, actor); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
