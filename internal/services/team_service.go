package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ismavld/esport-tournament/internal/authz"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"gorm.io/gorm"
)

// TeamService provides business logic for team operations.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// ListTeams returns all teams with their captain and members.
func (s *TeamService) ListTeams() ([]models.Team, error) {
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns a team with its captain and members.
func (s *TeamService) GetTeam(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id, "Captain", "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name string
	Tag  string
}

// CreateTeam creates a new team captained by the acting user. Only players
// can create teams.
func (s *TeamService) CreateTeam(input CreateTeamInput, actor authz.Actor) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apierrors.Validation("Team name is required")
	}
	if strings.TrimSpace(input.Tag) == "" {
		return nil, apierrors.Validation("Team tag is required")
	}

	user, err := s.userRepo.FindByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Role != models.RolePlayer {
		return nil, apierrors.Validation("Only players can create teams")
	}

	team := &models.Team{
		Name:      input.Name,
		Tag:       strings.ToUpper(input.Tag),
		CaptainID: user.ID,
	}

	if err := s.teamRepo.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Conflict("Team name or tag already exists")
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.teamRepo.FindByID(team.ID, "Captain", "Members")
}

// UpdateTeamInput represents parameters to update a team.
type UpdateTeamInput struct {
	Name *string
	Tag  *string
}

// UpdateTeam updates a team's name or tag. Allowed for the captain or an
// admin.
func (s *TeamService) UpdateTeam(id uint64, input UpdateTeamInput, actor authz.Actor) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if !authz.CanManage(actor, authz.TeamRelation(actor, team)) {
		return nil, apierrors.Forbidden("Only the team captain can modify this team")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apierrors.Validation("Team name cannot be empty")
		}
		team.Name = *input.Name
	}
	if input.Tag != nil {
		if strings.TrimSpace(*input.Tag) == "" {
			return nil, apierrors.Validation("Team tag cannot be empty")
		}
		team.Tag = strings.ToUpper(*input.Tag)
	}

	if err := s.teamRepo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Conflict("Team name or tag already exists")
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.teamRepo.FindByID(team.ID, "Captain", "Members")
}

// DeleteTeam removes a team. Allowed for the captain or an admin, and only
// while the team holds no pending or confirmed registration in an open or
// ongoing tournament.
func (s *TeamService) DeleteTeam(id uint64, actor authz.Actor) error {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFound("Team not found")
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	if !authz.CanManage(actor, authz.TeamRelation(actor, team)) {
		return apierrors.Forbidden("Only the team captain can delete this team")
	}

	active, err := s.teamRepo.HasActiveRegistrations(id)
	if err != nil {
		return fmt.Errorf("failed to check team registrations: %w", err)
	}
	if active {
		return apierrors.Conflict("Cannot delete a team registered in active tournaments")
	}

	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
