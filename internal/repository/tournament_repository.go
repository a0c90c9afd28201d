package repository

import (
	"github.com/ismavld/esport-tournament/internal/models"
	"gorm.io/gorm"
)

// GormTournamentRepository is a GORM implementation of TournamentRepository
type GormTournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new TournamentRepository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &GormTournamentRepository{db: db}
}

// Create creates a new tournament
func (r *GormTournamentRepository) Create(t *models.Tournament) error {
	return r.db.Create(t).Error
}

// FindByID finds a tournament by ID with optional preloading
func (r *GormTournamentRepository) FindByID(id uint64, preload ...string) (*models.Tournament, error) {
	var t models.Tournament
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List retrieves tournaments with filtering and pagination, newest first
func (r *GormTournamentRepository) List(filter TournamentFilter) ([]models.Tournament, int64, error) {
	var tournaments []models.Tournament

	query := r.db.Model(&models.Tournament{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Game != nil {
		query = query.Where("LOWER(game) LIKE LOWER(?)", "%"+*filter.Game+"%")
	}
	if filter.Format != nil {
		query = query.Where("format = ?", *filter.Format)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Offset(filter.Offset).Limit(filter.Limit)
	}

	if err := listQuery.Preload("Organizer").Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}

	return tournaments, total, nil
}

// Update updates a tournament
func (r *GormTournamentRepository) Update(t *models.Tournament) error {
	return r.db.Save(t).Error
}

// UpdateStatus sets only the tournament status
func (r *GormTournamentRepository) UpdateStatus(id uint64, status models.TournamentStatus) error {
	return r.db.Model(&models.Tournament{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a tournament and its registrations. The tournament delete is
// conditional on zero CONFIRMED registrations, so a confirmation committed
// between the caller's checks and this write still blocks the delete.
func (r *GormTournamentRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`DELETE FROM tournaments
			 WHERE id = ?
			 AND NOT EXISTS (SELECT 1 FROM registrations
			                 WHERE tournament_id = ? AND status = ?)`,
			id, id, models.RegistrationStatusConfirmed,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Tournament{}).
				Where("id = ?", id).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrHasConfirmedRegistrations
		}
		return tx.Where("tournament_id = ?", id).Delete(&models.Registration{}).Error
	})
}
