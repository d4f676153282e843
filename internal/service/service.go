package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/assodanse/assoserver/internal/cache/mem"
	"github.com/assodanse/assoserver/internal/domain"
	"github.com/assodanse/assoserver/internal/normalize"
	"github.com/assodanse/assoserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("not found")

type SiteService struct {
	events   storage.EventStorage
	contacts storage.ContactStorage
	info     storage.InfoStorage
	cache    *mem.Cache
	notify   func(domain.Event)
	log      *logrus.Entry
}

func New(events storage.EventStorage, contacts storage.ContactStorage, info storage.InfoStorage, l *logrus.Logger) *SiteService {
	return &SiteService{
		events:   events,
		contacts: contacts,
		info:     info,
		cache:    mem.New(),
		log:      l.WithField("from", "site-service"),
	}
}

// SetNotify registers a hook called when an event becomes published.
func (s *SiteService) SetNotify(fn func(domain.Event)) {
	s.notify = fn
}

// PublishedEvents returns the public event list, newest invalidation aside
// served from cache. Events older than a day drop off. A non-empty query
// filters on the folded title.
func (s *SiteService) PublishedEvents(ctx context.Context, query string) ([]domain.Event, error) {
	events, ok := s.cache.List()
	if !ok {
		var err error
		events, err = s.events.ListPublished(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Update(events)
	}
	cutoff := time.Now().Add(-24 * time.Hour)
	query = normalize.Title(query)
	filtered := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if event.StartsAt.Before(cutoff) {
			continue
		}
		if query != "" && !strings.Contains(normalize.Title(event.Title), query) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}

// PublicEvent returns one event, drafts excluded. The cache only ever holds
// published events, so a hit can be served directly.
func (s *SiteService) PublicEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if event, ok := s.cache.GetEvent(id); ok {
		return event, nil
	}
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, ErrNotFound
		}
		return domain.Event{}, err
	}
	if !event.Published {
		return domain.Event{}, ErrNotFound
	}
	return event, nil
}

func (s *SiteService) AllEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListEvents(ctx)
}

func (s *SiteService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	now := time.Now().UTC()
	event.ID = uuid.New()
	event.CreatedAt = now
	event.UpdatedAt = now
	created, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}
	s.cache.Invalidate()
	if created.Published {
		s.notifyPublished(created)
	}
	return created, nil
}

func (s *SiteService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.events.GetEvent(ctx, event.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, ErrNotFound
		}
		return domain.Event{}, err
	}
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now().UTC()
	updated, err := s.events.UpdateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}
	s.cache.Invalidate()
	if !existing.Published && updated.Published {
		s.notifyPublished(updated)
	}
	return updated, nil
}

func (s *SiteService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	err := s.events.DeleteEvent(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *SiteService) notifyPublished(event domain.Event) {
	if s.notify == nil {
		return
	}
	s.notify(event)
}

func (s *SiteService) SubmitContact(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	msg.ID = uuid.New()
	msg.Email = normalize.Email(msg.Email)
	msg.Read = false
	msg.CreatedAt = time.Now().UTC()
	return s.contacts.CreateMessage(ctx, msg)
}

func (s *SiteService) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.ListMessages(ctx)
}

func (s *SiteService) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	err := s.contacts.MarkRead(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *SiteService) Info(ctx context.Context) (domain.AssociationInfo, error) {
	return s.info.GetInfo(ctx)
}

func (s *SiteService) UpdateInfo(ctx context.Context, info domain.AssociationInfo) (domain.AssociationInfo, error) {
	info.UpdatedAt = time.Now().UTC()
	return s.info.UpdateInfo(ctx, info)
}

func (s *SiteService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	unread, err := s.contacts.CountUnread(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	stats := domain.DashboardStats{
		TotalEvents:    len(events),
		UnreadMessages: unread,
	}
	now := time.Now()
	for _, event := range events {
		if event.Published && event.StartsAt.After(now) {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}
