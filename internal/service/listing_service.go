package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListingService struct {
	listingRepo ListingRepository
	bidRepo     BidRepository
	now         func() time.Time
}

func NewListingService(u uow.UOW) (*ListingService, error) {
	listingRepo, err := uow.GetRepositoryAs[ListingRepository](u, uow.RepositoryName(repoargs.ListingRepoName))
	if err != nil {
		return nil, err
	}
	bidRepo, err := uow.GetRepositoryAs[BidRepository](u, uow.RepositoryName(repoargs.BidRepoName))
	if err != nil {
		return nil, err
	}
	return &ListingService{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		now:         time.Now,
	}, nil
}

type CreateListingArgs struct {
	SellerID      uuid.UUID
	Title         string
	Description   string
	Category      string
	Condition     string
	StartingPrice decimal.Decimal
	DurationDays  int
}

func (a CreateListingArgs) validate() error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return domain.NewValidationError("title", "must not be blank")
	case strings.TrimSpace(a.Description) == "":
		return domain.NewValidationError("description", "must not be blank")
	case !a.StartingPrice.IsPositive():
		return domain.NewValidationError("startingPrice", "must be greater than zero")
	case strings.TrimSpace(a.Category) == "":
		return domain.NewValidationError("category", "must not be blank")
	case strings.TrimSpace(a.Condition) == "":
		return domain.NewValidationError("condition", "must not be blank")
	case a.DurationDays <= 0:
		return domain.NewValidationError("durationDays", "must be greater than zero")
	}
	return nil
}

// Create создает лот в статусе pending. Текущая цена равна стартовой, время окончания фиксируется сразу.
func (l *ListingService) Create(ctx context.Context, args CreateListingArgs) (*domain.Listing, error) {
	if err := args.validate(); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	listing, err := l.listingRepo.Create(ctx, repoargs.CreateListing{
		ID:            uuid.New(),
		SellerID:      args.SellerID,
		Title:         strings.TrimSpace(args.Title),
		Description:   strings.TrimSpace(args.Description),
		Category:      args.Category,
		Condition:     args.Condition,
		StartingPrice: args.StartingPrice,
		EndTime:       l.now().AddDate(0, 0, args.DurationDays),
	})
	if err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	return listing, nil
}

// Get возвращает лот со ставками, вычисленной фазой и победителем, если аукцион закрыт.
func (l *ListingService) Get(ctx context.Context, id uuid.UUID) (*domain.ListingDetails, error) {
	listing, err := l.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting listing: %w", err)
	}
	bids, err := l.bidRepo.GetByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting listing bids: %w", err)
	}

	details := domain.ListingDetails{
		Listing: *listing,
		Bids:    bids,
		Phase:   listing.Phase(l.now()),
	}
	// ставки отсортированы по убыванию суммы.
	if details.Phase == domain.ListingPhaseClosed && len(bids) > 0 {
		winner := bids[0]
		details.Winner = &winner
	}
	return &details, nil
}

// Active каталог лотов, доступных для ставок.
func (l *ListingService) Active(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, fmt.Errorf("getting active listings: %w",
			domain.NewValidationError("minPrice", "must not exceed maxPrice"))
	}
	listings, err := l.listingRepo.GetActive(ctx, filter, l.now())
	if err != nil {
		return nil, fmt.Errorf("getting active listings: %w", err)
	}
	return listings, nil
}

// BySeller лоты продавца с количеством ставок.
func (l *ListingService) BySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Listing, error) {
	listings, err := l.listingRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("getting seller listings: %w", err)
	}
	return listings, nil
}
