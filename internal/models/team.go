package models

import "time"

type Team struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Tag       string    `gorm:"type:varchar(5);uniqueIndex;not null" json:"tag"`
	CaptainID uint64    `gorm:"not null" json:"captain_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Captain       User           `gorm:"foreignKey:CaptainID" json:"captain,omitempty"`
	Members       []User         `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Registrations []Registration `gorm:"foreignKey:TeamID" json:"-"`
}
