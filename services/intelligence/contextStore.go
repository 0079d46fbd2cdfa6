package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flowdesk/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// defaultMaxHistory bounds the stored conversation. Each chat turn appends
// two messages, so this keeps roughly the last 20 exchanges.
const defaultMaxHistory = 40

// RedisContextStore keeps the per-user rolling chat history in Redis. The
// history is trimmed to the newest maxHistory messages on every write so a
// chatty user cannot grow the prompt without bound inside the TTL.
type RedisContextStore struct {
	client     *redis.Client
	ttl        time.Duration
	maxHistory int
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl, maxHistory: defaultMaxHistory}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AIContext, error) {
	data, err := s.client.Get(ctx, aiContextPrefix+userID).Result()
	if err == redis.Nil {
		return &models.AIContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	var aiCtx models.AIContext
	if err := json.Unmarshal([]byte(data), &aiCtx); err != nil {
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, aiCtx *models.AIContext) error {
	aiCtx.Messages = trimHistory(aiCtx.Messages, s.maxHistory)
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return fmt.Errorf("failed to encode chat history: %w", err)
	}
	return s.client.Set(ctx, aiContextPrefix+userID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, aiContextPrefix+userID).Err()
}

// trimHistory drops the oldest messages beyond max, keeping the tail of the
// conversation. A non-positive max disables trimming.
func trimHistory(msgs []models.AIMessage, max int) []models.AIMessage {
	if max <= 0 || len(msgs) <= max {
		return msgs
	}
	return msgs[len(msgs)-max:]
}
