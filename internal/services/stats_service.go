package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"gorm.io/gorm"
)

// StatsService computes the read-only registration projection for a
// tournament. It mutates nothing and reads through the same repository as the
// lifecycles, so its counts can never drift from the stored state.
type StatsService struct {
	tournamentRepo repository.TournamentRepository
	regRepo        repository.RegistrationRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(tournamentRepo repository.TournamentRepository, regRepo repository.RegistrationRepository) *StatsService {
	return &StatsService{
		tournamentRepo: tournamentRepo,
		regRepo:        regRepo,
	}
}

// TournamentSummary is the tournament header of the stats view.
type TournamentSummary struct {
	ID              uint64                  `json:"id"`
	Name            string                  `json:"name"`
	Game            string                  `json:"game"`
	Status          models.TournamentStatus `json:"status"`
	Format          models.TournamentFormat `json:"format"`
	MaxParticipants int                     `json:"max_participants"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         *time.Time              `json:"end_date"`
}

// RegistrationBreakdown groups registration counts by status.
type RegistrationBreakdown struct {
	Total           int64                               `json:"total"`
	StatusBreakdown map[models.RegistrationStatus]int64 `json:"status_breakdown"`
	Confirmed       int64                               `json:"confirmed"`
}

// CapacityView describes how full the tournament is.
type CapacityView struct {
	Max              int   `json:"max"`
	Confirmed        int64 `json:"confirmed"`
	Available        int64 `json:"available"`
	PercentageFilled int   `json:"percentage_filled"`
}

// ConfirmedParticipant identifies one confirmed entry, disambiguated by type.
type ConfirmedParticipant struct {
	RegistrationID   uint64    `json:"registration_id"`
	RegistrationDate time.Time `json:"registration_date"`
	Type             string    `json:"type"`
	ID               uint64    `json:"id"`
	Username         string    `json:"username,omitempty"`
	Email            string    `json:"email,omitempty"`
	Name             string    `json:"name,omitempty"`
	Tag              string    `json:"tag,omitempty"`
}

// TournamentStats is the full stats view.
type TournamentStats struct {
	Tournament            TournamentSummary      `json:"tournament"`
	Registrations         RegistrationBreakdown  `json:"registrations"`
	Capacity              CapacityView           `json:"capacity"`
	ConfirmedParticipants []ConfirmedParticipant `json:"confirmed_participants"`
}

// GetTournamentStats builds the stats view for a tournament.
func (s *StatsService) GetTournamentStats(tournamentID uint64) (*TournamentStats, error) {
	t, err := s.tournamentRepo.FindByID(tournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}

	counts, err := s.regRepo.CountByStatus(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}

	breakdown := map[models.RegistrationStatus]int64{
		models.RegistrationStatusPending:   counts[models.RegistrationStatusPending],
		models.RegistrationStatusConfirmed: counts[models.RegistrationStatusConfirmed],
		models.RegistrationStatusRejected:  counts[models.RegistrationStatusRejected],
		models.RegistrationStatusWithdrawn: counts[models.RegistrationStatusWithdrawn],
	}

	var total int64
	for _, n := range breakdown {
		total += n
	}
	confirmed := breakdown[models.RegistrationStatusConfirmed]

	percentage := 0
	if t.MaxParticipants > 0 {
		percentage = int(math.Round(float64(confirmed) / float64(t.MaxParticipants) * 100))
	}

	available := int64(t.MaxParticipants) - confirmed
	if available < 0 {
		available = 0
	}

	confirmedRegs, err := s.regRepo.ListConfirmed(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed registrations: %w", err)
	}

	participants := make([]ConfirmedParticipant, 0, len(confirmedRegs))
	for _, reg := range confirmedRegs {
		p := ConfirmedParticipant{
			RegistrationID:   reg.ID,
			RegistrationDate: reg.RegisteredAt,
		}
		if reg.Player != nil {
			p.Type = "PLAYER"
			p.ID = reg.Player.ID
			p.Username = reg.Player.Username
			p.Email = reg.Player.Email
		} else if reg.Team != nil {
			p.Type = "TEAM"
			p.ID = reg.Team.ID
			p.Name = reg.Team.Name
			p.Tag = reg.Team.Tag
		}
		participants = append(participants, p)
	}

	return &TournamentStats{
		Tournament: TournamentSummary{
			ID:              t.ID,
			Name:            t.Name,
			Game:            t.Game,
			Status:          t.Status,
			Format:          t.Format,
			MaxParticipants: t.MaxParticipants,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
		},
		Registrations: RegistrationBreakdown{
			Total:           total,
			StatusBreakdown: breakdown,
			Confirmed:       confirmed,
		},
		Capacity: CapacityView{
			Max:              t.MaxParticipants,
			Confirmed:        confirmed,
			Available:        available,
			PercentageFilled: percentage,
		},
		ConfirmedParticipants: participants,
	}, nil
}
