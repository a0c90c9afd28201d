package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetTournamentStats returns the registration and capacity projection for a
// tournament
func (h *StatsHandler) GetTournamentStats(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondBadRequest(c, "Invalid tournament ID")
		return
	}

	stats, err := h.statsService.GetTournamentStats(tournamentID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
