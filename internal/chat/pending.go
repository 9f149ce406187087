package chat

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// PendingStore keeps at most one pending follow-up per user. Backed by an LRU
// so abandoned follow-ups age out instead of leaking.
type PendingStore struct {
	cache *lru.Cache[string, PendingAction]
}

// NewPendingStore creates the follow-up store.
func NewPendingStore() (*PendingStore, error) {
	cache, err := lru.New[string, PendingAction](pendingCapacity)
	if err != nil {
		return nil, err
	}
	return &PendingStore{cache: cache}, nil
}

// Put replaces the user's pending action.
func (s *PendingStore) Put(userID string, action PendingAction) {
	s.cache.Add(userID, action)
}

// Take returns and removes the user's pending action.
func (s *PendingStore) Take(userID string) (PendingAction, bool) {
	action, ok := s.cache.Get(userID)
	if ok {
		s.cache.Remove(userID)
	}
	return action, ok
}
