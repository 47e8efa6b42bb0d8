package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// subscriptions are the chats notified about new snapshots.
type subscriptions struct {
	chats mapset.Set[int64]
}

func newSubs() subscriptions {
	return subscriptions{
		chats: mapset.NewSet[int64](),
	}
}

func (s *subscriptions) Add(chatID int64) bool {
	return s.chats.Add(chatID)
}

func (s *subscriptions) Remove(chatID int64) {
	s.chats.Remove(chatID)
}

func (s *subscriptions) ChatIDs() []int64 {
	return s.chats.ToSlice()
}
