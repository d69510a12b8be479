package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserServicer interface {
	Provision(ctx context.Context, args service.ProvisionUserArgs) (*domain.User, error)
}

type LedgerServicer interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*service.BalanceChange, error)
	Transactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

type AuctionServicer interface {
	PlaceBid(ctx context.Context, args service.PlaceBidArgs) (*domain.Bid, error)
	BidsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Bid, error)
}

type ListingServicer interface {
	Create(ctx context.Context, args service.CreateListingArgs) (*domain.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ListingDetails, error)
	Active(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error)
	BySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Listing, error)
}

type StatusServicer interface {
	GetStatus(ctx context.Context, listingID uuid.UUID) (*domain.ListingStatus, error)
	SetStatus(
		ctx context.Context,
		listingID uuid.UUID,
		status domain.AIStatusType,
		message string,
	) (*domain.ListingStatus, error)
}

type VerificationServicer interface {
	Verify(ctx context.Context, args service.VerifyArgs) (*service.VerificationResult, error)
}

// StatusSubscriber источник push обновлений статуса для SSE.
type StatusSubscriber interface {
	Subscribe(ctx context.Context, listingID uuid.UUID) (<-chan domain.ListingStatus, func(), error)
}
