package dto

import (
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
)

// RegistrationDTO represents a registration in API responses
type RegistrationDTO struct {
	ID           uint64                    `json:"id"`
	TournamentID uint64                    `json:"tournament_id"`
	PlayerID     *uint64                   `json:"player_id,omitempty"`
	TeamID       *uint64                   `json:"team_id,omitempty"`
	Status       models.RegistrationStatus `json:"status"`
	RegisteredAt time.Time                 `json:"registered_at"`
	ConfirmedAt  *time.Time                `json:"confirmed_at"`
	Player       *UserDTO                  `json:"player,omitempty"`
	Team         *TeamDTO                  `json:"team,omitempty"`
}

// ToRegistrationDTO converts a Registration model to RegistrationDTO
func ToRegistrationDTO(reg models.Registration) RegistrationDTO {
	dto := RegistrationDTO{
		ID:           reg.ID,
		TournamentID: reg.TournamentID,
		PlayerID:     reg.PlayerID,
		TeamID:       reg.TeamID,
		Status:       reg.Status,
		RegisteredAt: reg.RegisteredAt,
		ConfirmedAt:  reg.ConfirmedAt,
	}

	if reg.Player != nil {
		player := ToUserDTO(*reg.Player)
		dto.Player = &player
	}
	if reg.Team != nil {
		team := ToTeamDTO(*reg.Team)
		dto.Team = &team
	}

	return dto
}

// ToRegistrationDTOs converts a slice of registrations
func ToRegistrationDTOs(regs []models.Registration) []RegistrationDTO {
	dtos := make([]RegistrationDTO, len(regs))
	for i, reg := range regs {
		dtos[i] = ToRegistrationDTO(reg)
	}
	return dtos
}
