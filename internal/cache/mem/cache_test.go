package mem

import (
	"testing"
	"time"

	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := New()

	_, ok := c.List()
	assert.False(t, ok, "empty cache must report invalid")

	first := domain.Event{ID: uuid.New(), Title: "Soirée Salsa", StartsAt: time.Now().Add(time.Hour)}
	second := domain.Event{ID: uuid.New(), Title: "Bal Trad", StartsAt: time.Now().Add(2 * time.Hour)}
	c.Update([]domain.Event{second, first})

	events, ok := c.List()
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID, "events must be ordered by start date")

	got, ok := c.GetEvent(first.ID)
	require.True(t, ok)
	assert.Equal(t, first.Title, got.Title)

	_, ok = c.GetEvent(uuid.New())
	assert.False(t, ok)

	c.Invalidate()
	_, ok = c.List()
	assert.False(t, ok)
	_, ok = c.GetEvent(first.ID)
	assert.False(t, ok)
}

func TestCacheKeepsSameTitledEvents(t *testing.T) {
	c := New()

	// A recurring event shows up several times with one title.
	weekly := []domain.Event{
		{ID: uuid.New(), Title: "Soirée Salsa", StartsAt: time.Now().Add(24 * time.Hour)},
		{ID: uuid.New(), Title: "Soirée Salsa", StartsAt: time.Now().Add(8 * 24 * time.Hour)},
	}
	c.Update(weekly)

	events, ok := c.List()
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.NotEqual(t, events[0].ID, events[1].ID)
}
