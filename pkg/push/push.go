// Package push publishes realtime in-app events over Redis pub/sub. A frontend
// gateway subscribed to the per-user channel fans them out to open sockets.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"study-assistant/config"
	"study-assistant/pkg/log"
)

const channelPrefix = "push:user:"

// Gateway is the interface consumed by the notification engine.
type Gateway interface {
	Emit(ctx context.Context, userID, event string, payload any) error
	Close() error
}

type implGateway struct {
	rdb *redis.Client
	l   log.Logger
}

type envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}

// New connects a Redis client and verifies it with a ping.
func New(ctx context.Context, cfg config.RedisConfig, l log.Logger) (Gateway, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &implGateway{rdb: rdb, l: l}, nil
}

// Emit publishes one event to the user's channel. Delivery is fire-and-forget:
// with no subscriber the message is dropped by Redis, which is acceptable for
// in-app notifications backed by a persisted row.
func (g *implGateway) Emit(ctx context.Context, userID, event string, payload any) error {
	body, err := json.Marshal(envelope{Event: event, Payload: payload, SentAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	if err := g.rdb.Publish(ctx, channelPrefix+userID, body).Err(); err != nil {
		g.l.Errorf(ctx, "pkg.push.Emit publish user=%s: %v", userID, err)
		return err
	}
	return nil
}

func (g *implGateway) Close() error {
	return g.rdb.Close()
}
