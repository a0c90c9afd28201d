package dto

import (
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
)

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Tag       string    `json:"tag"`
	CaptainID uint64    `json:"captain_id"`
	Captain   *UserDTO  `json:"captain,omitempty"`
	Members   []UserDTO `json:"members,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	dto := TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		Tag:       team.Tag,
		CaptainID: team.CaptainID,
		CreatedAt: team.CreatedAt,
	}

	if team.Captain.ID != 0 {
		captain := ToUserDTO(team.Captain)
		dto.Captain = &captain
	}

	if len(team.Members) > 0 {
		dto.Members = ToUserDTOs(team.Members)
	}

	return dto
}

// ToTeamDTOs converts a slice of teams
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, t := range teams {
		dtos[i] = ToTeamDTO(t)
	}
	return dtos
}
