package domain

import "time"

// RoleCreator is assumed when a registration carries no role.
const RoleCreator = "creator"

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	Bio          string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
