package sweeper

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

// Expirer переводит зависшие проверки в статус error.
type Expirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int, error)
}
