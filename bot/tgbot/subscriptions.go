package tgbot

import (
	botmodel "github.com/assodanse/assoserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

// subscriptions maps an event feed to its subscriber ids. The map itself is
// fixed after newSubs, the sets are safe for concurrent use, so notifications
// may be sent from other goroutines.
type subscriptions struct {
	m map[botmodel.EventType]mapset.Set[int]
}

func newSubs() subscriptions {
	return subscriptions{
		m: map[botmodel.EventType]mapset.Set[int]{
			botmodel.NewEvent: mapset.NewSet[int](),
		},
	}
}

func (s *subscriptions) Add(t botmodel.EventType, userID int) {
	if s.m[t] == nil {
		return
	}
	s.m[t].Add(userID)
}

func (s *subscriptions) Remove(t botmodel.EventType, userID int) {
	if s.m[t] == nil {
		return
	}
	s.m[t].Remove(userID)
}

func (s *subscriptions) GetUserIDs(t botmodel.EventType) []int {
	if s.m[t] == nil {
		return nil
	}
	return s.m[t].ToSlice()
}
