package mem

import (
	"sort"
	"sync"

	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
)

// Cache keeps the published events in memory so the public listing does not
// hit the database on every request. It is invalidated on any admin write.
// Events are keyed by id; titles are not unique (recurring events share one).
type Cache struct {
	mu     sync.RWMutex
	valid  bool
	events map[uuid.UUID]domain.Event
}

func New() *Cache {
	return &Cache{
		events: make(map[uuid.UUID]domain.Event),
	}
}

func (c *Cache) Update(events []domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = make(map[uuid.UUID]domain.Event, len(events))
	for i := range events {
		c.events[events[i].ID] = events[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) GetEvent(id uuid.UUID) (domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Event{}, false
	}
	event, ok := c.events[id]
	if !ok {
		return domain.Event{}, false
	}
	return event, true
}

// List returns the cached events ordered by start date. The second return is
// false when the cache has been invalidated and needs a refresh.
func (c *Cache) List() ([]domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	events := make([]domain.Event, 0, len(c.events))
	for _, event := range c.events {
		events = append(events, event)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartsAt.Before(events[j].StartsAt)
	})
	return events, true
}
