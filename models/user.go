package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Profile      Profile   `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}
