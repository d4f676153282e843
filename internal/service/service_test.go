package service

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	events   map[uuid.UUID]domain.Event
	messages map[uuid.UUID]domain.ContactMessage
	info     domain.AssociationInfo

	listPublishedCalls int
	getEventCalls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:   make(map[uuid.UUID]domain.Event),
		messages: make(map[uuid.UUID]domain.ContactMessage),
	}
}

func (f *fakeStore) ListEvents(_ context.Context) ([]domain.Event, error) {
	list := make([]domain.Event, 0, len(f.events))
	for _, event := range f.events {
		list = append(list, event)
	}
	return list, nil
}

func (f *fakeStore) ListPublished(_ context.Context) ([]domain.Event, error) {
	f.listPublishedCalls++
	list := make([]domain.Event, 0, len(f.events))
	for _, event := range f.events {
		if event.Published {
			list = append(list, event)
		}
	}
	return list, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	f.getEventCalls++
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, sql.ErrNoRows
	}
	return event, nil
}

func (f *fakeStore) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeStore) UpdateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return domain.Event{}, sql.ErrNoRows
	}
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.events, id)
	return nil
}

func (f *fakeStore) CreateMessage(_ context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	f.messages[msg.ID] = msg
	return msg, nil
}

func (f *fakeStore) ListMessages(_ context.Context) ([]domain.ContactMessage, error) {
	list := make([]domain.ContactMessage, 0, len(f.messages))
	for _, msg := range f.messages {
		list = append(list, msg)
	}
	return list, nil
}

func (f *fakeStore) MarkRead(_ context.Context, id uuid.UUID) error {
	msg, ok := f.messages[id]
	if !ok {
		return sql.ErrNoRows
	}
	msg.Read = true
	f.messages[id] = msg
	return nil
}

func (f *fakeStore) CountUnread(_ context.Context) (int, error) {
	n := 0
	for _, msg := range f.messages {
		if !msg.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetInfo(_ context.Context) (domain.AssociationInfo, error) {
	return f.info, nil
}

func (f *fakeStore) UpdateInfo(_ context.Context, info domain.AssociationInfo) (domain.AssociationInfo, error) {
	f.info = info
	return info, nil
}

func newTestService(t *testing.T) (*SiteService, *fakeStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := newFakeStore()
	return New(st, st, st, log), st
}

func TestPublishedEvents(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	soon := time.Now().Add(48 * time.Hour)

	_, err := svc.CreateEvent(ctx, domain.Event{Title: "Soirée salsa", StartsAt: soon, Published: true})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, domain.Event{Title: "Stage de tango", StartsAt: soon, Published: true})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, domain.Event{Title: "Brouillon", StartsAt: soon, Published: false})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, domain.Event{Title: "Gala passé", StartsAt: time.Now().Add(-72 * time.Hour), Published: true})
	require.NoError(t, err)

	t.Run("drafts and past events are hidden", func(t *testing.T) {
		events, err := svc.PublishedEvents(ctx, "")
		require.NoError(t, err)
		titles := make([]string, 0, len(events))
		for _, event := range events {
			titles = append(titles, event.Title)
		}
		assert.ElementsMatch(t, []string{"Soirée salsa", "Stage de tango"}, titles)
	})

	t.Run("search ignores case and accents", func(t *testing.T) {
		events, err := svc.PublishedEvents(ctx, "SOIREE")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Soirée salsa", events[0].Title)
	})

	t.Run("second read hits the cache", func(t *testing.T) {
		calls := st.listPublishedCalls
		_, err := svc.PublishedEvents(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, calls, st.listPublishedCalls)
	})

	t.Run("same-titled events all survive the cache", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, domain.Event{Title: "Cours hebdo", StartsAt: soon, Published: true})
		require.NoError(t, err)
		_, err = svc.CreateEvent(ctx, domain.Event{Title: "Cours hebdo", StartsAt: soon.Add(7 * 24 * time.Hour), Published: true})
		require.NoError(t, err)

		count := func() int {
			events, err := svc.PublishedEvents(ctx, "cours hebdo")
			require.NoError(t, err)
			return len(events)
		}
		require.Equal(t, 2, count())
		assert.Equal(t, 2, count(), "cache-served list must keep both occurrences")
	})

	t.Run("write invalidates the cache", func(t *testing.T) {
		calls := st.listPublishedCalls
		_, err := svc.CreateEvent(ctx, domain.Event{Title: "Portes ouvertes", StartsAt: soon, Published: true})
		require.NoError(t, err)
		_, err = svc.PublishedEvents(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, calls+1, st.listPublishedCalls)
	})
}

func TestPublicEvent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	published, err := svc.CreateEvent(ctx, domain.Event{Title: "Soirée", StartsAt: time.Now(), Published: true})
	require.NoError(t, err)
	draft, err := svc.CreateEvent(ctx, domain.Event{Title: "Brouillon", StartsAt: time.Now(), Published: false})
	require.NoError(t, err)

	_, err = svc.PublicEvent(ctx, published.ID)
	assert.NoError(t, err)
	_, err = svc.PublicEvent(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.PublicEvent(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("served from cache once warm", func(t *testing.T) {
		_, err := svc.PublishedEvents(ctx, "")
		require.NoError(t, err)
		calls := st.getEventCalls
		got, err := svc.PublicEvent(ctx, published.ID)
		require.NoError(t, err)
		assert.Equal(t, published.ID, got.ID)
		assert.Equal(t, calls, st.getEventCalls)
	})
}

func TestNotifyOnPublish(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	var notified []string
	svc.SetNotify(func(event domain.Event) {
		notified = append(notified, event.Title)
	})

	draft, err := svc.CreateEvent(ctx, domain.Event{Title: "Stage", StartsAt: time.Now(), Published: false})
	require.NoError(t, err)
	assert.Empty(t, notified, "draft creation must not notify")

	draft.Published = true
	published, err := svc.UpdateEvent(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stage"}, notified)

	published.Description = "mise à jour"
	_, err = svc.UpdateEvent(ctx, published)
	require.NoError(t, err)
	assert.Len(t, notified, 1, "already published event must not notify again")

	_, err = svc.CreateEvent(ctx, domain.Event{Title: "Gala", StartsAt: time.Now(), Published: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Stage", "Gala"}, notified)
}

func TestDeleteEvent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Title: "Soirée", StartsAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEvent(ctx, event.ID))
	assert.ErrorIs(t, svc.DeleteEvent(ctx, event.ID), ErrNotFound)
}

func TestContactMessages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.SubmitContact(ctx, domain.ContactMessage{
		Name:    "Jean",
		Email:   " Jean@Example.COM ",
		Message: "bonjour",
	})
	require.NoError(t, err)
	assert.Equal(t, "jean@example.com", msg.Email)
	assert.False(t, msg.Read)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UnreadMessages)

	require.NoError(t, svc.MarkMessageRead(ctx, msg.ID))
	stats, err = svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.UnreadMessages)

	assert.ErrorIs(t, svc.MarkMessageRead(ctx, uuid.New()), ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, domain.Event{Title: "à venir", StartsAt: time.Now().Add(time.Hour), Published: true})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, domain.Event{Title: "passé", StartsAt: time.Now().Add(-time.Hour), Published: true})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, domain.Event{Title: "brouillon", StartsAt: time.Now().Add(time.Hour), Published: false})
	require.NoError(t, err)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 1, stats.UpcomingEvents)
}
