package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ismavld/esport-tournament/internal/authz"
	"github.com/ismavld/esport-tournament/internal/constants"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"gorm.io/gorm"
)

// TournamentService owns the tournament lifecycle: creation in DRAFT, gated
// status transitions, mutation rules and deletion rules.
type TournamentService struct {
	tournamentRepo repository.TournamentRepository
	regRepo        repository.RegistrationRepository
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(tournamentRepo repository.TournamentRepository, regRepo repository.RegistrationRepository) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		regRepo:        regRepo,
	}
}

// ListTournamentsInput represents filters for listing tournaments.
type ListTournamentsInput struct {
	Status *models.TournamentStatus
	Game   *string
	Format *models.TournamentFormat
	Page   int
	Limit  int
}

// ListTournaments returns tournaments matching the filters, newest first.
func (s *TournamentService) ListTournaments(input ListTournamentsInput) ([]models.Tournament, int64, error) {
	filter := repository.TournamentFilter{
		Status: input.Status,
		Game:   input.Game,
		Format: input.Format,
		Limit:  input.Limit,
	}
	if input.Page > 0 && input.Limit > 0 {
		filter.Offset = (input.Page - 1) * input.Limit
	}

	tournaments, total, err := s.tournamentRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, total, nil
}

// GetTournament returns a tournament with its organizer and registrations.
func (s *TournamentService) GetTournament(id uint64) (*models.Tournament, error) {
	t, err := s.tournamentRepo.FindByID(id, "Organizer", "Registrations", "Registrations.Player", "Registrations.Team")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}
	return t, nil
}

// CreateTournamentInput represents input for creating a tournament.
type CreateTournamentInput struct {
	Name            string
	Game            string
	Format          models.TournamentFormat
	MaxParticipants int
	PrizePool       float64
	StartDate       time.Time
	EndDate         *time.Time
	OrganizerID     uint64
}

// CreateTournament creates a tournament in DRAFT. The start date must be in
// the future and the end date, if present, strictly after the start date.
func (s *TournamentService) CreateTournament(input CreateTournamentInput) (*models.Tournament, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apierrors.Validation("Tournament name is required")
	}
	if strings.TrimSpace(input.Game) == "" {
		return nil, apierrors.Validation("Game is required")
	}
	if !input.Format.Valid() {
		return nil, apierrors.Validation("Format must be SOLO or TEAM")
	}
	if input.MaxParticipants <= 0 {
		return nil, apierrors.Validation("Max participants must be positive")
	}
	if input.PrizePool < 0 {
		return nil, apierrors.Validation("Prize pool must be non-negative")
	}
	if !input.StartDate.After(time.Now()) {
		return nil, apierrors.Validation("Start date must be in the future")
	}
	if input.EndDate != nil && !input.EndDate.After(input.StartDate) {
		return nil, apierrors.Validation("End date must be after start date")
	}

	t := &models.Tournament{
		Name:            input.Name,
		Game:            input.Game,
		Format:          input.Format,
		MaxParticipants: input.MaxParticipants,
		PrizePool:       input.PrizePool,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          models.TournamentStatusDraft,
		OrganizerID:     input.OrganizerID,
	}

	if err := s.tournamentRepo.Create(t); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	return s.tournamentRepo.FindByID(t.ID, "Organizer")
}

// UpdateTournamentInput represents a patch for a tournament. The format is
// deliberately absent: it is immutable after creation.
type UpdateTournamentInput struct {
	Name            *string
	Game            *string
	MaxParticipants *int
	PrizePool       *float64
	StartDate       *time.Time
	EndDate         *time.Time
}

// UpdateTournament applies a patch to a tournament. Allowed for the owning
// organizer or an admin, and only while the tournament is not in a terminal
// status.
func (s *TournamentService) UpdateTournament(id uint64, input UpdateTournamentInput, actor authz.Actor) (*models.Tournament, error) {
	t, err := s.tournamentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}

	if !authz.CanManage(actor, authz.TournamentRelation(actor, t)) {
		return nil, apierrors.Forbidden("You are not authorized to update this tournament")
	}

	if t.Status.IsTerminal() {
		return nil, apierrors.Conflict("Cannot modify a completed or cancelled tournament")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apierrors.Validation("Tournament name cannot be empty")
		}
		t.Name = *input.Name
	}
	if input.Game != nil {
		if strings.TrimSpace(*input.Game) == "" {
			return nil, apierrors.Validation("Game cannot be empty")
		}
		t.Game = *input.Game
	}
	if input.MaxParticipants != nil {
		if *input.MaxParticipants <= 0 {
			return nil, apierrors.Validation("Max participants must be positive")
		}
		// Shrinking capacity below the confirmed count would strand
		// already-confirmed participants.
		confirmed, err := s.regRepo.CountConfirmed(id)
		if err != nil {
			return nil, fmt.Errorf("failed to count confirmed registrations: %w", err)
		}
		if int64(*input.MaxParticipants) < confirmed {
			return nil, apierrors.Conflict("Cannot reduce max participants below the confirmed count")
		}
		t.MaxParticipants = *input.MaxParticipants
	}
	if input.PrizePool != nil {
		if *input.PrizePool < 0 {
			return nil, apierrors.Validation("Prize pool must be non-negative")
		}
		t.PrizePool = *input.PrizePool
	}
	if input.StartDate != nil {
		t.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		t.EndDate = input.EndDate
	}

	// Dates are validated on the merged result so a patch cannot leave the
	// tournament with an end date at or before its start date.
	if t.EndDate != nil && !t.EndDate.After(t.StartDate) {
		return nil, apierrors.Validation("End date must be after start date")
	}

	if err := s.tournamentRepo.Update(t); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}

	return s.tournamentRepo.FindByID(t.ID, "Organizer")
}

// DeleteTournament removes a tournament. Allowed for the owning organizer or
// an admin, and only while zero registrations are CONFIRMED.
func (s *TournamentService) DeleteTournament(id uint64, actor authz.Actor) error {
	t, err := s.tournamentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFound("Tournament not found")
		}
		return fmt.Errorf("failed to find tournament: %w", err)
	}

	if !authz.CanManage(actor, authz.TournamentRelation(actor, t)) {
		return apierrors.Forbidden("You are not authorized to delete this tournament")
	}

	if err := s.tournamentRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrHasConfirmedRegistrations) {
			return apierrors.Conflict("Cannot delete a tournament with confirmed registrations")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFound("Tournament not found")
		}
		return fmt.Errorf("failed to delete tournament: %w", err)
	}

	return nil
}

// UpdateStatus runs the tournament state machine. Authorization guards are
// evaluated before transition validity, matching the API contract: COMPLETED
// is admin-only, CANCELLED needs the owning organizer or an admin, the
// remaining transitions only need an authenticated actor.
func (s *TournamentService) UpdateStatus(id uint64, newStatus models.TournamentStatus, actor authz.Actor) (*models.Tournament, error) {
	if !newStatus.Valid() {
		return nil, apierrors.Validation("Unknown tournament status")
	}

	t, err := s.tournamentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}

	if newStatus == models.TournamentStatusCompleted && !authz.CanComplete(actor) {
		return nil, apierrors.Forbidden("Only admins can mark tournaments as completed")
	}
	if newStatus == models.TournamentStatusCancelled &&
		!authz.CanManage(actor, authz.TournamentRelation(actor, t)) {
		return nil, apierrors.Forbidden("Only the organizer or admin can cancel this tournament")
	}

	if !t.Status.CanTransitionTo(newStatus) {
		return nil, apierrors.Conflict(fmt.Sprintf("Cannot transition from %s to %s", t.Status, newStatus))
	}

	switch newStatus {
	case models.TournamentStatusOpen:
		if !t.StartDate.After(time.Now()) {
			return nil, apierrors.Conflict("Cannot open a tournament with a start date in the past")
		}
	case models.TournamentStatusOngoing:
		confirmed, err := s.regRepo.CountConfirmed(id)
		if err != nil {
			return nil, fmt.Errorf("failed to count confirmed registrations: %w", err)
		}
		if confirmed < constants.MinConfirmedToStart {
			return nil, apierrors.Conflict(fmt.Sprintf("Tournament must have at least %d confirmed participants", constants.MinConfirmedToStart))
		}
	}

	if err := s.tournamentRepo.UpdateStatus(id, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update tournament status: %w", err)
	}

	return s.tournamentRepo.FindByID(id, "Organizer")
}
