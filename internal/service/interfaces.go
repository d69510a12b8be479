package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Upsert(ctx context.Context, args repoargs.UpsertUser) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type ListingRepository interface {
	Create(ctx context.Context, args repoargs.CreateListing) (*domain.Listing, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	RaiseCurrentPrice(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
	SetAIStatus(ctx context.Context, args repoargs.SetAIStatus) (*domain.Listing, error)
	MarkStaleProcessing(ctx context.Context, before time.Time, message string) ([]domain.Listing, error)
	GetActive(ctx context.Context, filter repoargs.ListingFilter, now time.Time) ([]domain.Listing, error)
	GetBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Listing, error)
}

type BidRepository interface {
	Create(ctx context.Context, args repoargs.CreateBid) (*domain.Bid, error)
	GetByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Bid, error)
	GetByBidder(ctx context.Context, bidderID uuid.UUID) ([]domain.Bid, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

// StatusPublisher рассылает подписчикам изменения статуса верификации.
type StatusPublisher interface {
	Publish(ctx context.Context, status domain.ListingStatus) error
}

// VerifierClient клиент внешнего сервиса AI проверки.
type VerifierClient interface {
	Predict(ctx context.Context, payload domain.VerificationPayload) (domain.AIStatusType, error)
	RegisterAuction(ctx context.Context, payload domain.VerificationPayload) error
}
