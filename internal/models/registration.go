package models

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "PENDING"
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusRejected  RegistrationStatus = "REJECTED"
	RegistrationStatusWithdrawn RegistrationStatus = "WITHDRAWN"
)

// registrationTransitions is the complete transition table for registration
// statuses. REJECTED and WITHDRAWN are terminal.
var registrationTransitions = map[RegistrationStatus][]RegistrationStatus{
	RegistrationStatusPending: {
		RegistrationStatusConfirmed,
		RegistrationStatusRejected,
		RegistrationStatusWithdrawn,
	},
	RegistrationStatusConfirmed: {RegistrationStatusWithdrawn},
}

// CanTransitionTo reports whether the transition from s to next is allowed.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	for _, allowed := range registrationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s RegistrationStatus) IsTerminal() bool {
	return len(registrationTransitions[s]) == 0
}

// Valid reports whether the status is one of the known registration statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed,
		RegistrationStatusRejected, RegistrationStatusWithdrawn:
		return true
	}
	return false
}

// Registration links a tournament to exactly one of a player or a team.
// The composite unique indexes enforce one registration per participant per
// tournament regardless of status; rows with a NULL player_id or team_id do
// not collide.
type Registration struct {
	ID           uint64             `gorm:"primarykey" json:"id"`
	TournamentID uint64             `gorm:"not null;uniqueIndex:uniq_registrations_tournament_player;uniqueIndex:uniq_registrations_tournament_team" json:"tournament_id"`
	PlayerID     *uint64            `gorm:"uniqueIndex:uniq_registrations_tournament_player" json:"player_id,omitempty"`
	TeamID       *uint64            `gorm:"uniqueIndex:uniq_registrations_tournament_team" json:"team_id,omitempty"`
	Status       RegistrationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	RegisteredAt time.Time          `gorm:"not null" json:"registered_at"`
	ConfirmedAt  *time.Time         `json:"confirmed_at"`

	// Relations
	Tournament Tournament `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	Player     *User      `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Team       *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}
