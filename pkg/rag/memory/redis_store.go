package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticker-chat-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "chat:conversation:"
	conversationTTL = 24 * time.Hour
)

// RedisStore shares conversation memory across processes. Turns live in a
// Redis list per conversation; RPUSH keeps insertion order and is atomic, so
// no extra locking is needed.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(conversationID string) string {
	return redisKeyPrefix + conversationID
}

func (s *RedisStore) Load(ctx context.Context, conversationID string) ([]entity.ConversationTurn, error) {
	raw, err := s.client.LRange(ctx, s.key(conversationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
	}

	turns := make([]entity.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn entity.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("corrupt turn in conversation %s: %w", conversationID, err)
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

func (s *RedisStore) Append(ctx context.Context, conversationID string, turn entity.ConversationTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	key := s.key(conversationID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to append turn to %s: %w", conversationID, err)
	}

	// Refresh the sliding expiry on every write.
	if err := s.client.Expire(ctx, key, conversationTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh ttl for %s: %w", conversationID, err)
	}

	return nil
}
