package models

import "time"

type UserRole string

const (
	RolePlayer    UserRole = "PLAYER"
	RoleOrganizer UserRole = "ORGANIZER"
	RoleAdmin     UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'PLAYER'" json:"role"`
	TeamID       *uint64   `gorm:"index" json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CaptainedTeams       []Team         `gorm:"foreignKey:CaptainID" json:"-"`
	OrganizedTournaments []Tournament   `gorm:"foreignKey:OrganizerID" json:"-"`
	Registrations        []Registration `gorm:"foreignKey:PlayerID" json:"-"`
}
