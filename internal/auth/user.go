package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `gorm:"type:varchar(50);primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func NewUser(email, passwordHash string) User {
	return User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
