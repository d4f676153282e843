package model

import "time"

type EventType string

const (
	NewEvent EventType = "new_event"
)

type UserRole int

const (
	RoleAdmin UserRole = 1
	RoleUser  UserRole = 2
)

type User struct {
	ID        int
	FirstName string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Role UserRole

	Subscriptions []EventType
}
