package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DeliveryDeduper recuerda ids de mensajes ya procesados para ignorar reentregas del webhook.
type DeliveryDeduper interface {
	// FirstDelivery devuelve false si el id ya fue visto.
	FirstDelivery(ctx context.Context, messageID string) bool
	Forget(ctx context.Context, messageID string)
}

type redisDeliveryDeduper struct {
	client  redisSetNXer
	ttl     time.Duration
	timeout time.Duration
	prefix  string
}

type redisSetNXer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func NewRedisDeliveryDeduper(client *redis.Client, ttl time.Duration) DeliveryDeduper {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisDeliveryDeduper{
		client:  client,
		ttl:     ttl,
		timeout: 500 * time.Millisecond,
		prefix:  "groupme:msg:",
	}
}

// FirstDelivery falla abierto: sin id o con Redis caído el mensaje se procesa.
func (d *redisDeliveryDeduper) FirstDelivery(ctx context.Context, messageID string) bool {
	if d == nil || d.client == nil {
		return true
	}
	key := strings.TrimSpace(messageID)
	if key == "" {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ok, err := d.client.SetNX(ctx, d.prefix+key, 1, d.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}

func (d *redisDeliveryDeduper) Forget(ctx context.Context, messageID string) {
	if d == nil || d.client == nil {
		return
	}
	key := strings.TrimSpace(messageID)
	if key == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	_ = d.client.Del(ctx, d.prefix+key).Err()
}
