// Package statuspoll опрашивает статус AI проверки лота до получения финального вердикта.
package statuspoll

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultInterval = 3 * time.Second

// Poller опрашивает статус с постоянным интервалом, без backoff.
type Poller struct {
	fetcher  Fetcher
	l        *logrus.Entry
	interval time.Duration
	onUpdate func(domain.ListingStatus)
}

func New(fetcher Fetcher, l *logrus.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		l:        l.WithField("component", "statuspoll"),
		interval: DefaultInterval,
	}
}

// SetInterval устанавливает интервал опроса.
func (p *Poller) SetInterval(interval time.Duration) *Poller {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// OnUpdate вызывается для каждого полученного нефинального статуса.
func (p *Poller) OnUpdate(fn func(domain.ListingStatus)) *Poller {
	p.onUpdate = fn
	return p
}

// Wait делает первый запрос сразу, затем каждые interval, пока статус pending или processing.
// Возвращает первый финальный статус. Ошибки запросов логируются и пропускаются.
// При отмене контекста возвращает ошибку контекста.
func (p *Poller) Wait(ctx context.Context, listingID uuid.UUID) (*domain.ListingStatus, error) {
	l := p.l.WithField("listingID", listingID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		status, err := p.fetcher.FetchStatus(ctx, listingID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.WithError(err).Debug("fetch status")
		case status.Status.IsTerminal():
			return status, nil
		case p.onUpdate != nil:
			p.onUpdate(*status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
