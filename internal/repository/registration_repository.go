package repository

import (
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
	"gorm.io/gorm"
)

// GormRegistrationRepository is a GORM implementation of RegistrationRepository
type GormRegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

// Create inserts a new registration
func (r *GormRegistrationRepository) Create(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

// FindByID finds a registration by ID with optional preloading
func (r *GormRegistrationRepository) FindByID(id uint64, preload ...string) (*models.Registration, error) {
	var reg models.Registration
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListByTournament returns a tournament's registrations, optionally filtered
// by status, newest first
func (r *GormRegistrationRepository) ListByTournament(tournamentID uint64, status *models.RegistrationStatus) ([]models.Registration, error) {
	var regs []models.Registration
	query := r.db.Where("tournament_id = ?", tournamentID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.
		Preload("Player").
		Preload("Team").
		Order("registered_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// FindByParticipant finds any registration for the given player or team in a
// tournament, regardless of status
func (r *GormRegistrationRepository) FindByParticipant(tournamentID uint64, playerID, teamID *uint64) (*models.Registration, error) {
	var reg models.Registration
	query := r.db.Where("tournament_id = ?", tournamentID)
	if playerID != nil {
		query = query.Where("player_id = ?", *playerID)
	} else if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	if err := query.First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// CountConfirmed counts CONFIRMED registrations for a tournament
func (r *GormRegistrationRepository) CountConfirmed(tournamentID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Where("tournament_id = ? AND status = ?", tournamentID, models.RegistrationStatusConfirmed).
		Count(&count).Error
	return count, err
}

// CountByStatus returns per-status registration counts for a tournament
func (r *GormRegistrationRepository) CountByStatus(tournamentID uint64) (map[models.RegistrationStatus]int64, error) {
	var rows []struct {
		Status models.RegistrationStatus
		Count  int64
	}
	err := r.db.Model(&models.Registration{}).
		Select("status, COUNT(*) AS count").
		Where("tournament_id = ?", tournamentID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RegistrationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ListConfirmed returns CONFIRMED registrations with participant data
func (r *GormRegistrationRepository) ListConfirmed(tournamentID uint64) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.
		Where("tournament_id = ? AND status = ?", tournamentID, models.RegistrationStatusConfirmed).
		Preload("Player").
		Preload("Team").
		Order("registered_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// ConfirmWithinCapacity atomically moves a PENDING registration to CONFIRMED.
// The transaction first touches the tournament row, which takes its row lock
// and serializes concurrent confirmations for the same tournament; the status
// write is then a conditional UPDATE whose subquery re-checks the confirmed
// count, so the count can never overshoot the maximum.
func (r *GormRegistrationRepository) ConfirmWithinCapacity(regID, tournamentID uint64, max int, confirmedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		lock := tx.Exec(`UPDATE tournaments SET updated_at = updated_at WHERE id = ?`, tournamentID)
		if lock.Error != nil {
			return lock.Error
		}

		result := tx.Exec(
			`UPDATE registrations SET status = ?, confirmed_at = ?
			 WHERE id = ? AND status = ?
			 AND (SELECT COUNT(*) FROM registrations
			      WHERE tournament_id = ? AND status = ?) < ?`,
			models.RegistrationStatusConfirmed, confirmedAt,
			regID, models.RegistrationStatusPending,
			tournamentID, models.RegistrationStatusConfirmed, max,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Zero rows means either the count is at max or the row lost
			// its PENDING status to a concurrent transition; re-read to
			// tell the two apart.
			var status models.RegistrationStatus
			if err := tx.Raw(`SELECT status FROM registrations WHERE id = ?`, regID).
				Scan(&status).Error; err != nil {
				return err
			}
			if status == models.RegistrationStatusPending {
				return ErrCapacityExceeded
			}
			return ErrRegistrationNotPending
		}
		return nil
	})
}

// UpdateStatus sets the registration status without touching confirmedAt
func (r *GormRegistrationRepository) UpdateStatus(id uint64, status models.RegistrationStatus) error {
	return r.db.Model(&models.Registration{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete hard-removes a registration
func (r *GormRegistrationRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Registration{}, id).Error
}
