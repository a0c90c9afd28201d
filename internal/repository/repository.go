package repository

import (
	"errors"
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
)

// ErrCapacityExceeded is returned by ConfirmWithinCapacity when confirming
// the registration would push the confirmed count past the tournament's
// maximum.
var ErrCapacityExceeded = errors.New("tournament capacity exceeded")

// ErrRegistrationNotPending is returned by ConfirmWithinCapacity when the
// registration lost its PENDING status to a concurrent transition.
var ErrRegistrationNotPending = errors.New("registration is no longer pending")

// ErrHasConfirmedRegistrations is returned by TournamentRepository.Delete
// when the tournament still holds CONFIRMED registrations.
var ErrHasConfirmedRegistrations = errors.New("tournament has confirmed registrations")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// FindByID finds a team by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Team, error)

	// List returns all teams with captain and members, newest first
	List() ([]models.Team, error)

	// Update updates a team
	Update(team *models.Team) error

	// Delete removes a team
	Delete(id uint64) error

	// HasActiveRegistrations reports whether the team holds a PENDING or
	// CONFIRMED registration in an OPEN or ONGOING tournament
	HasActiveRegistrations(teamID uint64) (bool, error)
}

// TournamentFilter holds filtering options for listing tournaments
type TournamentFilter struct {
	Status *models.TournamentStatus
	Game   *string
	Format *models.TournamentFormat
	Offset int
	Limit  int
}

// TournamentRepository defines the interface for tournament data access
type TournamentRepository interface {
	// Create creates a new tournament
	Create(t *models.Tournament) error

	// FindByID finds a tournament by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Tournament, error)

	// List retrieves tournaments with filtering and pagination, newest first
	List(filter TournamentFilter) ([]models.Tournament, int64, error)

	// Update updates a tournament
	Update(t *models.Tournament) error

	// UpdateStatus sets only the tournament status
	UpdateStatus(id uint64, status models.TournamentStatus) error

	// Delete removes a tournament and its registrations if and only if no
	// registration is CONFIRMED; returns ErrHasConfirmedRegistrations
	// otherwise
	Delete(id uint64) error
}

// RegistrationRepository defines the interface for registration data access.
// Capacity-sensitive writes are expressed as single conditional statements so
// concurrent confirmations can never overshoot the maximum.
type RegistrationRepository interface {
	// Create inserts a new registration; a duplicate participant for the
	// same tournament fails on the composite unique index
	Create(reg *models.Registration) error

	// FindByID finds a registration by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Registration, error)

	// ListByTournament returns a tournament's registrations, optionally
	// filtered by status, newest first
	ListByTournament(tournamentID uint64, status *models.RegistrationStatus) ([]models.Registration, error)

	// FindByParticipant finds any registration for the given player or team
	// in a tournament, regardless of status
	FindByParticipant(tournamentID uint64, playerID, teamID *uint64) (*models.Registration, error)

	// CountConfirmed counts CONFIRMED registrations for a tournament
	CountConfirmed(tournamentID uint64) (int64, error)

	// CountByStatus returns per-status registration counts for a tournament
	CountByStatus(tournamentID uint64) (map[models.RegistrationStatus]int64, error)

	// ListConfirmed returns CONFIRMED registrations with participant data
	ListConfirmed(tournamentID uint64) ([]models.Registration, error)

	// ConfirmWithinCapacity atomically moves a PENDING registration to
	// CONFIRMED if and only if the tournament's confirmed count is still
	// below max. Returns ErrCapacityExceeded when the count is at max and
	// ErrRegistrationNotPending when the row is no longer PENDING.
	ConfirmWithinCapacity(regID, tournamentID uint64, max int, confirmedAt time.Time) error

	// UpdateStatus sets the registration status without touching confirmedAt
	UpdateStatus(id uint64, status models.RegistrationStatus) error

	// Delete hard-removes a registration
	Delete(id uint64) error
}
