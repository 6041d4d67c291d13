package models

import "gorm.io/gorm"

// Role is the coarse permission tag carried by every user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:15;not null"`
	Email        string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"size:5;not null;default:user"`
}
