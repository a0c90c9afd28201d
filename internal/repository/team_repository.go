package repository

import (
	"github.com/ismavld/esport-tournament/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a team by ID with optional preloading
func (r *GormTeamRepository) FindByID(id uint64, preload ...string) (*models.Team, error) {
	var team models.Team
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns all teams with captain and members, newest first
func (r *GormTeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Captain").
		Preload("Members").
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete removes a team and detaches its members
func (r *GormTeamRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, id).Error
	})
}

// HasActiveRegistrations reports whether the team holds a PENDING or
// CONFIRMED registration in an OPEN or ONGOING tournament
func (r *GormTeamRepository) HasActiveRegistrations(teamID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Joins("JOIN tournaments ON tournaments.id = registrations.tournament_id").
		Where("registrations.team_id = ?", teamID).
		Where("registrations.status IN ?", []models.RegistrationStatus{
			models.RegistrationStatusPending,
			models.RegistrationStatusConfirmed,
		}).
		Where("tournaments.status IN ?", []models.TournamentStatus{
			models.TournamentStatusOpen,
			models.TournamentStatusOngoing,
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
