// Package events доставляет изменения статуса верификации лотов подписчикам.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
)

// subscriberBuffer размер буфера канала подписчика. Если подписчик не успевает читать, промежуточные
// события для него отбрасываются, финальный статус вытесняет самое старое событие.
const subscriberBuffer = 16

// offer отправляет событие в канал подписчика без блокировки. Писать в ch должен только вызывающий.
func offer(ch chan domain.ListingStatus, status domain.ListingStatus) {
	select {
	case ch <- status:
		return
	default:
	}
	if !status.Status.IsTerminal() {
		return
	}
	// буфер полон: освобождаем место под финальный статус.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- status:
	default:
	}
}

type Publisher interface {
	Publish(ctx context.Context, status domain.ListingStatus) error
}

type Subscriber interface {
	// Subscribe подписывается на статусы лота listingID. Канал закрывается после вызова cancel
	// или отмены ctx.
	Subscribe(ctx context.Context, listingID uuid.UUID) (<-chan domain.ListingStatus, func(), error)
}

type Bus interface {
	Publisher
	Subscriber
	Close() error
}

// statusMessage формат события на проводе.
type statusMessage struct {
	ListingID uuid.UUID  `json:"listingId"`
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp"`
}

func encodeStatus(status domain.ListingStatus) (string, error) {
	payload, err := json.Marshal(statusMessage{
		ListingID: status.ListingID,
		Status:    string(status.Status),
		Message:   status.Message,
		Timestamp: status.Timestamp,
	})
	if err != nil {
		return "", fmt.Errorf("encoding status event: %w", err)
	}
	return string(payload), nil
}

func decodeStatus(payload string) (domain.ListingStatus, error) {
	var msg statusMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return domain.ListingStatus{}, fmt.Errorf("decoding status event: %w", err)
	}
	status := domain.AIStatusType(msg.Status)
	if !status.IsValid() {
		return domain.ListingStatus{}, fmt.Errorf("decoding status event: unknown status %q", msg.Status)
	}
	return domain.ListingStatus{
		ListingID: msg.ListingID,
		Status:    status,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}, nil
}
