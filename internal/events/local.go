package events

import (
	"context"
	"sync"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
)

type localSubscription struct {
	listingID uuid.UUID
	ch        chan domain.ListingStatus
	done      chan struct{}
	once      sync.Once
}

// LocalBus шина внутри одного процесса. Используется когда redis не настроен или недоступен.
type LocalBus struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[*localSubscription]struct{}
}

func NewLocalBus() *LocalBus {
	return &LocalBus{
		subs: make(map[uuid.UUID]map[*localSubscription]struct{}),
	}
}

// Publish рассылает статус подписчикам лота без блокировки.
func (b *LocalBus) Publish(_ context.Context, status domain.ListingStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[status.ListingID] {
		offer(sub.ch, status)
	}
	return nil
}

func (b *LocalBus) Subscribe(ctx context.Context, listingID uuid.UUID) (<-chan domain.ListingStatus, func(), error) {
	sub := &localSubscription{
		listingID: listingID,
		ch:        make(chan domain.ListingStatus, subscriberBuffer),
		done:      make(chan struct{}),
	}

	b.mu.Lock()
	if b.subs[listingID] == nil {
		b.subs[listingID] = make(map[*localSubscription]struct{})
	}
	b.subs[listingID][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(sub)
		case <-sub.done:
		}
	}()

	return sub.ch, func() { b.unsubscribe(sub) }, nil
}

// Close отписывает всех подписчиков.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	var all []*localSubscription
	for _, subs := range b.subs {
		for sub := range subs {
			all = append(all, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range all {
		b.unsubscribe(sub)
	}
	return nil
}

func (b *LocalBus) unsubscribe(sub *localSubscription) {
	sub.once.Do(func() {
		b.mu.Lock()
		delete(b.subs[sub.listingID], sub)
		if len(b.subs[sub.listingID]) == 0 {
			delete(b.subs, sub.listingID)
		}
		// закрываем под мьютексом, чтобы Publish не писал в закрытый канал.
		close(sub.ch)
		b.mu.Unlock()
		close(sub.done)
	})
}
