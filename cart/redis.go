package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"

	// ChangeChannel carries best-effort cart change notifications so other
	// open views of the same cart can refresh. Messages are the user ID.
	ChangeChannel = "cart:changed"
)

// RedisStorage persists each user's cart as a JSON array under cart:<userID>
// and publishes a change notification on every save.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage returns a Storage backed by the given Redis client.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func cartKey(userID string) string {
	return cartKeyPrefix + userID
}

// Load reads and decodes the stored cart. A missing key or corrupted value
// reads as an empty cart.
func (r *RedisStorage) Load(ctx context.Context, userID string) ([]Line, error) {
	raw, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decodeLines(raw), nil
}

// Save writes the cart and publishes the change. The publish is best effort;
// a failed notification never fails the mutation.
func (r *RedisStorage) Save(ctx context.Context, userID string, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, cartKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	r.client.Publish(ctx, ChangeChannel, userID)
	return nil
}
