package events

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const channelPrefix = "listing-status:"

// RedisBus шина на redis pub/sub. События видны всем экземплярам сервиса.
type RedisBus struct {
	client *redis.Client
	l      *logrus.Entry
}

func NewRedisBus(client *redis.Client, l *logrus.Logger) *RedisBus {
	return &RedisBus{
		client: client,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "redis",
		}),
	}
}

func channelName(listingID uuid.UUID) string {
	return channelPrefix + listingID.String()
}

func (b *RedisBus) Publish(ctx context.Context, status domain.ListingStatus) error {
	payload, err := encodeStatus(status)
	if err != nil {
		return err
	}
	if err = b.client.Publish(ctx, channelName(status.ListingID), payload).Err(); err != nil {
		return fmt.Errorf("publishing status of listing %s: %w", status.ListingID, err)
	}
	return nil
}

// Subscribe подписывается на канал лота и дожидается подтверждения подписки от redis.
func (b *RedisBus) Subscribe(ctx context.Context, listingID uuid.UUID) (<-chan domain.ListingStatus, func(), error) {
	pubsub := b.client.Subscribe(ctx, channelName(listingID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribing to listing %s: %w", listingID, err)
	}

	out := make(chan domain.ListingStatus, subscriberBuffer)
	subCtx, cancel := context.WithCancel(ctx)

	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				b.l.WithError(err).Debug("closing subscription")
			}
		}()

		messages := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				status, err := decodeStatus(msg.Payload)
				if err != nil {
					b.l.WithError(err).WithField("channel", msg.Channel).Warn("skipping malformed status event")
					continue
				}
				offer(out, status)
			}
		}
	}()

	return out, cancel, nil
}

func (b *RedisBus) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

// NewRedisClient подключается к redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
