// Package sweeper периодически завершает проверки, зависшие в статусе processing.
package sweeper

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout = 3 * time.Second
	defaultInterval       = time.Minute
	defaultStaleAfter     = 10 * time.Minute
)

// Sweeper раз в interval (с разбросом) просит сервисный слой пометить как error лоты,
// которые находятся в processing дольше staleAfter.
type Sweeper struct {
	svc        Expirer
	l          *logrus.Entry
	interval   time.Duration
	staleAfter time.Duration
}

// New создает новый экземпляр Sweeper.
func New(svc Expirer, l *logrus.Logger) *Sweeper {
	return &Sweeper{
		svc: svc,
		l: l.WithFields(logrus.Fields{
			"component": "verification",
			"module":    "sweeper",
		}),
		interval:   defaultInterval,
		staleAfter: defaultStaleAfter,
	}
}

// SetInterval устанавливает базовый интервал между проходами.
func (s *Sweeper) SetInterval(interval time.Duration) *Sweeper {
	if interval > 0 {
		s.interval = interval
	}
	return s
}

// SetStaleAfter устанавливает время, после которого проверка считается зависшей.
func (s *Sweeper) SetStaleAfter(staleAfter time.Duration) *Sweeper {
	if staleAfter > 0 {
		s.staleAfter = staleAfter
	}
	return s
}

// Run выполняет проходы до отмены контекста.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"interval":   s.interval,
		"staleAfter": s.staleAfter,
	}).Info("Starting")

	for {
		s.sweep(ctx)

		wait := time.Duration(jitter(float64(s.interval), 0.15, 0.15))
		select {
		case <-ctx.Done():
			s.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(wait):
		}
	}
}

// sweep выполняет один проход. Ошибки только логируются, следующий проход повторит попытку.
func (s *Sweeper) sweep(ctx context.Context) int {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	count, err := s.svc.ExpireStale(reqCtx, s.staleAfter)
	if err != nil {
		s.l.WithError(err).Error("expire stale verifications")
		return 0
	}
	if count > 0 {
		s.l.WithField("count", count).Warn("Stale verifications marked as error")
	}
	return count
}
