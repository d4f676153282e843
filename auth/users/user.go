package users

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	LastLogin time.Time
	CreatedAt time.Time
}

// Secret never leaves the auth packages. The bcrypt hash embeds its own salt.
type Secret struct {
	PasswordHash string
}
