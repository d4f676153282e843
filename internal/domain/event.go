package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

type AssociationInfo struct {
	Name        string
	Description string
	Address     string
	Email       string
	Phone       string
	UpdatedAt   time.Time
}

// DashboardStats is what the admin landing page shows at a glance.
type DashboardStats struct {
	TotalEvents    int
	UpcomingEvents int
	UnreadMessages int
}
