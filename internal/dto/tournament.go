package dto

import (
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/utils"
)

// TournamentDTO represents a tournament in API responses
type TournamentDTO struct {
	ID              uint64                  `json:"id"`
	Name            string                  `json:"name"`
	Game            string                  `json:"game"`
	Format          models.TournamentFormat `json:"format"`
	MaxParticipants int                     `json:"max_participants"`
	PrizePool       float64                 `json:"prize_pool"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         *time.Time              `json:"end_date"`
	Status          models.TournamentStatus `json:"status"`
	OrganizerID     uint64                  `json:"organizer_id"`
	Organizer       *UserDTO                `json:"organizer,omitempty"`
	Registrations   []RegistrationDTO       `json:"registrations,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// TournamentListResponse represents a paginated list of tournaments
type TournamentListResponse struct {
	Tournaments []TournamentDTO          `json:"tournaments"`
	Pagination  utils.PaginationResponse `json:"pagination"`
}

// ToTournamentDTO converts a Tournament model to TournamentDTO
func ToTournamentDTO(t models.Tournament) TournamentDTO {
	dto := TournamentDTO{
		ID:              t.ID,
		Name:            t.Name,
		Game:            t.Game,
		Format:          t.Format,
		MaxParticipants: t.MaxParticipants,
		PrizePool:       t.PrizePool,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		Status:          t.Status,
		OrganizerID:     t.OrganizerID,
		CreatedAt:       t.CreatedAt,
	}

	if t.Organizer.ID != 0 {
		organizer := ToUserDTO(t.Organizer)
		dto.Organizer = &organizer
	}

	if len(t.Registrations) > 0 {
		dto.Registrations = ToRegistrationDTOs(t.Registrations)
	}

	return dto
}

// ToTournamentListResponse converts tournaments with pagination metadata
func ToTournamentListResponse(tournaments []models.Tournament, params utils.PaginationParams, total int64) TournamentListResponse {
	dtos := make([]TournamentDTO, len(tournaments))
	for i, t := range tournaments {
		dtos[i] = ToTournamentDTO(t)
	}
	return TournamentListResponse{
		Tournaments: dtos,
		Pagination:  utils.NewPaginationResponse(params, total),
	}
}
