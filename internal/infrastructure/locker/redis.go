package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dealdesk/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

const keyPrefix = "dealdesk:claim:"

// Redis — межпроцессный guard клейма: SETNX с TTL на ключ заказа.
// TTL страхует от вечного замка, если процесс умер, не дойдя до Release.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (l *Redis) Acquire(ctx context.Context, orderRecordID string) (bool, error) {
	acquired, err := l.client.SetNX(ctx, keyPrefix+orderRecordID, 1, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis.SetNX: %w", err)
	}

	return acquired, nil
}

func (l *Redis) Release(ctx context.Context, orderRecordID string) {
	if err := l.client.Del(ctx, keyPrefix+orderRecordID).Err(); err != nil {
		logger(ctx).Warn("failed to release claim lock", "order", orderRecordID, "error", err)
	}
}
