package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ismavld/esport-tournament/internal/authz"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"gorm.io/gorm"
)

// RegistrationService owns the registration lifecycle: admission of PENDING
// entries while a tournament is open, the status state machine, and the
// capacity guard at confirmation time.
type RegistrationService struct {
	regRepo        repository.RegistrationRepository
	tournamentRepo repository.TournamentRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	tournamentRepo repository.TournamentRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) *RegistrationService {
	return &RegistrationService{
		regRepo:        regRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
	}
}

// RegistrationInput represents input for registering a participant. Exactly
// one of PlayerID and TeamID must be set.
type RegistrationInput struct {
	TournamentID uint64
	PlayerID     *uint64
	TeamID       *uint64
}

// Register admits a new PENDING registration. The preconditions run in a
// fixed order, each with its own failure mode: tournament exists, tournament
// is OPEN, confirmed count below capacity, participant kind matches the
// format, no prior registration for the participant (any status), and for
// teams the acting user must be the captain.
func (s *RegistrationService) Register(input RegistrationInput, actor authz.Actor) (*models.Registration, error) {
	hasPlayer := input.PlayerID != nil
	hasTeam := input.TeamID != nil
	if hasPlayer == hasTeam {
		return nil, apierrors.Validation("Provide either playerId or teamId, but not both")
	}

	t, err := s.tournamentRepo.FindByID(input.TournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}

	if t.Status != models.TournamentStatusOpen {
		return nil, apierrors.Conflict("Tournament is not open for registrations")
	}

	// Pre-filter on the CONFIRMED count only; PENDING entries beyond
	// capacity are allowed, the authoritative check happens at confirmation.
	confirmed, err := s.regRepo.CountConfirmed(t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed registrations: %w", err)
	}
	if confirmed >= int64(t.MaxParticipants) {
		return nil, apierrors.Conflict("Tournament is full")
	}

	switch t.Format {
	case models.FormatSolo:
		if !hasPlayer {
			return nil, apierrors.Validation("Solo tournaments only accept individual player registrations")
		}
	case models.FormatTeam:
		if !hasTeam {
			return nil, apierrors.Validation("Team tournaments only accept team registrations")
		}
	}

	if _, err := s.regRepo.FindByParticipant(t.ID, input.PlayerID, input.TeamID); err == nil {
		if hasPlayer {
			return nil, apierrors.Conflict("Player already registered for this tournament")
		}
		return nil, apierrors.Conflict("Team already registered for this tournament")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	if hasPlayer {
		if _, err := s.userRepo.FindByID(*input.PlayerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierrors.NotFound("Player not found")
			}
			return nil, fmt.Errorf("failed to find player: %w", err)
		}
	} else {
		team, err := s.teamRepo.FindByID(*input.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierrors.NotFound("Team not found")
			}
			return nil, fmt.Errorf("failed to find team: %w", err)
		}
		if team.CaptainID != actor.UserID {
			return nil, apierrors.Forbidden("Only the team captain can register the team")
		}
	}

	reg := &models.Registration{
		TournamentID: t.ID,
		PlayerID:     input.PlayerID,
		TeamID:       input.TeamID,
		Status:       models.RegistrationStatusPending,
		RegisteredAt: time.Now(),
	}

	if err := s.regRepo.Create(reg); err != nil {
		// The composite unique index backstops the duplicate check against
		// concurrent inserts for the same participant.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Conflict("Participant already registered for this tournament")
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return s.regRepo.FindByID(reg.ID, "Player", "Team")
}

// ListRegistrations returns a tournament's registrations, optionally filtered
// by status.
func (s *RegistrationService) ListRegistrations(tournamentID uint64, status *models.RegistrationStatus) ([]models.Registration, error) {
	if status != nil && !status.Valid() {
		return nil, apierrors.Validation("Unknown registration status")
	}

	if _, err := s.tournamentRepo.FindByID(tournamentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Tournament not found")
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}

	regs, err := s.regRepo.ListByTournament(tournamentID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}

// UpdateStatus runs the registration state machine. Allowed for the
// tournament's organizer, an admin, or the registration's own participant.
// PENDING to CONFIRMED goes through the atomic capacity guard and stamps
// confirmedAt; leaving CONFIRMED never clears it.
func (s *RegistrationService) UpdateStatus(registrationID uint64, newStatus models.RegistrationStatus, actor authz.Actor) (*models.Registration, error) {
	if !newStatus.Valid() {
		return nil, apierrors.Validation("Unknown registration status")
	}

	reg, err := s.regRepo.FindByID(registrationID, "Tournament", "Team")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Registration not found")
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}

	if !authz.CanManage(actor, authz.RegistrationRelation(actor, reg)) {
		return nil, apierrors.Forbidden("You are not authorized to update this registration")
	}

	if !reg.Status.CanTransitionTo(newStatus) {
		return nil, apierrors.Conflict(fmt.Sprintf("Cannot transition from %s to %s", reg.Status, newStatus))
	}

	if newStatus == models.RegistrationStatusConfirmed {
		err := s.regRepo.ConfirmWithinCapacity(reg.ID, reg.TournamentID, reg.Tournament.MaxParticipants, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrCapacityExceeded) {
				return nil, apierrors.Conflict("Tournament is full")
			}
			if errors.Is(err, repository.ErrRegistrationNotPending) {
				return nil, apierrors.Conflict("Registration is no longer pending")
			}
			return nil, fmt.Errorf("failed to confirm registration: %w", err)
		}
	} else {
		if err := s.regRepo.UpdateStatus(reg.ID, newStatus); err != nil {
			return nil, fmt.Errorf("failed to update registration status: %w", err)
		}
	}

	return s.regRepo.FindByID(reg.ID, "Player", "Team")
}

// Delete hard-removes a registration. Allowed for the same actors as status
// changes, only while the registration is PENDING and belongs to the given
// tournament. Confirmed entries must be withdrawn through the state machine;
// rejected and withdrawn entries are permanent history.
func (s *RegistrationService) Delete(tournamentID, registrationID uint64, actor authz.Actor) error {
	reg, err := s.regRepo.FindByID(registrationID, "Tournament", "Team")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFound("Registration not found")
		}
		return fmt.Errorf("failed to find registration: %w", err)
	}

	if reg.TournamentID != tournamentID {
		return apierrors.Validation("Registration does not belong to this tournament")
	}

	if !authz.CanManage(actor, authz.RegistrationRelation(actor, reg)) {
		return apierrors.Forbidden("You are not authorized to cancel this registration")
	}

	if reg.Status == models.RegistrationStatusConfirmed {
		return apierrors.Conflict("Confirmed registrations cannot be deleted. Change status to WITHDRAWN instead")
	}
	if reg.Status != models.RegistrationStatusPending {
		return apierrors.Conflict(fmt.Sprintf("Cannot delete %s registrations", reg.Status))
	}

	if err := s.regRepo.Delete(reg.ID); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	return nil
}
