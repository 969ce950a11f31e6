package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"school-store/models"
)

// cartTTL matches a browser session: an untouched cart expires after a day.
const cartTTL = 24 * time.Hour

// RedisCartStore persists per-user cart lines as JSON under cart:<user id>.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *RedisCartStore) Get(ctx context.Context, userID int) ([]models.CartLine, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID int, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(userID), raw, cartTTL).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, userID int) error {
	return s.client.Del(ctx, cartKey(userID)).Err()
}
