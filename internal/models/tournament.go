package models

import "time"

type TournamentFormat string

const (
	FormatSolo TournamentFormat = "SOLO"
	FormatTeam TournamentFormat = "TEAM"
)

// Valid reports whether the format is SOLO or TEAM.
func (f TournamentFormat) Valid() bool {
	return f == FormatSolo || f == FormatTeam
}

type TournamentStatus string

const (
	TournamentStatusDraft     TournamentStatus = "DRAFT"
	TournamentStatusOpen      TournamentStatus = "OPEN"
	TournamentStatusOngoing   TournamentStatus = "ONGOING"
	TournamentStatusCompleted TournamentStatus = "COMPLETED"
	TournamentStatusCancelled TournamentStatus = "CANCELLED"
)

// tournamentTransitions is the complete transition table for tournament
// statuses. Absent entries are terminal states.
var tournamentTransitions = map[TournamentStatus][]TournamentStatus{
	TournamentStatusDraft:   {TournamentStatusOpen, TournamentStatusCancelled},
	TournamentStatusOpen:    {TournamentStatusOngoing, TournamentStatusCancelled},
	TournamentStatusOngoing: {TournamentStatusCompleted, TournamentStatusCancelled},
}

// CanTransitionTo reports whether the transition from s to next is allowed.
func (s TournamentStatus) CanTransitionTo(next TournamentStatus) bool {
	for _, allowed := range tournamentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s TournamentStatus) IsTerminal() bool {
	return len(tournamentTransitions[s]) == 0
}

// Valid reports whether the status is one of the known tournament statuses.
func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentStatusDraft, TournamentStatusOpen, TournamentStatusOngoing,
		TournamentStatusCompleted, TournamentStatusCancelled:
		return true
	}
	return false
}

type Tournament struct {
	ID              uint64           `gorm:"primarykey" json:"id"`
	Name            string           `gorm:"type:varchar(255);not null" json:"name"`
	Game            string           `gorm:"type:varchar(255);not null" json:"game"`
	Format          TournamentFormat `gorm:"type:varchar(10);not null" json:"format"`
	MaxParticipants int              `gorm:"not null" json:"max_participants"`
	PrizePool       float64          `gorm:"not null;default:0" json:"prize_pool"`
	StartDate       time.Time        `gorm:"not null" json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	Status          TournamentStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	OrganizerID     uint64           `gorm:"not null;index" json:"organizer_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Relations
	Organizer     User           `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Registrations []Registration `gorm:"foreignKey:TournamentID" json:"registrations,omitempty"`
}
