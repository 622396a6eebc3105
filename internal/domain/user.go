package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Avatar       *string
	CreatedAt    time.Time
}

// Principal is the authenticated actor attached to a request.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
