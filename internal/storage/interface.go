package storage

import (
	"context"

	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
)

type EventStorage interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListPublished(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type ContactStorage interface {
	CreateMessage(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}

type InfoStorage interface {
	GetInfo(ctx context.Context) (domain.AssociationInfo, error)
	UpdateInfo(ctx context.Context, info domain.AssociationInfo) (domain.AssociationInfo, error)
}
