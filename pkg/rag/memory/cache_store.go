package memory

import (
	"context"
	"sync"
	"time"

	"ticker-chat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CacheStore is the default in-process memory backend. go-cache handles
// keyed storage and TTL eviction; the mutex serializes the read-modify-write
// in Append so concurrent requests on the same conversation cannot drop
// turns.
type CacheStore struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewCacheStore() *CacheStore {
	// Conversations expire after 24 hours of inactivity; expired entries are
	// purged every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &CacheStore{cache: c}
}

func (s *CacheStore) Load(_ context.Context, conversationID string) ([]entity.ConversationTurn, error) {
	x, found := s.cache.Get(conversationID)
	if !found {
		return []entity.ConversationTurn{}, nil
	}

	turns := x.([]entity.ConversationTurn)
	// Copy so callers can't mutate the stored slice.
	out := make([]entity.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *CacheStore) Append(_ context.Context, conversationID string, turn entity.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var turns []entity.ConversationTurn
	if x, found := s.cache.Get(conversationID); found {
		turns = x.([]entity.ConversationTurn)
	}

	turns = append(turns, turn)
	s.cache.Set(conversationID, turns, cache.DefaultExpiration)
	return nil
}
