package statuspoll

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
)

type Fetcher interface {
	FetchStatus(ctx context.Context, listingID uuid.UUID) (*domain.ListingStatus, error)
}
