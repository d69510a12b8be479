package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionService struct {
	uow     uow.UOW
	ledger  *LedgerService
	bidRepo BidRepository
	now     func() time.Time
}

func NewAuctionService(u uow.UOW, ledger *LedgerService) (*AuctionService, error) {
	bidRepo, err := uow.GetRepositoryAs[BidRepository](u, uow.RepositoryName(repoargs.BidRepoName))
	if err != nil {
		return nil, err
	}
	return &AuctionService{
		uow:     u,
		ledger:  ledger,
		bidRepo: bidRepo,
		now:     time.Now,
	}, nil
}

type PlaceBidArgs struct {
	ListingID uuid.UUID
	BidderID  uuid.UUID
	Amount    decimal.Decimal
}

// PlaceBid единственная точка создания ставки и изменения текущей цены лота.
//
// Все шаги выполняются в одной транзакции:
//  1. Блокирует строку лота (domain.ErrRecordNotFound если лота нет).
//  2. Проверяет окончание аукциона, вердикт AI, что участник не продавец и что ставка выше текущей цены.
//  3. Списывает BidReserveRatio от суммы ставки с баланса участника (блокируя строку юзера).
//  4. Создает ставку.
//  5. Поднимает текущую цену через compare-and-set. Если цена не поднялась - domain.ErrBidTooLow.
//
// Любая ошибка откатывает все изменения. Блокировки берутся в порядке лот -> юзер.
func (a *AuctionService) PlaceBid(ctx context.Context, args PlaceBidArgs) (*domain.Bid, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("placing bid: %w", domain.NewValidationError("amount", "must be greater than zero"))
	}

	var bid *domain.Bid
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		listingRepo, err := uow.GetAs[ListingRepository](tx, uow.RepositoryName(repoargs.ListingRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		bidRepo, err := uow.GetAs[BidRepository](tx, uow.RepositoryName(repoargs.BidRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		listing, err := listingRepo.FindByIDForUpdate(c, args.ListingID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err = checkBiddable(listing, args, a.now()); err != nil {
			return err
		}

		if _, err = a.ledger.ReserveForBid(c, tx, args.BidderID, args.Amount.Mul(BidReserveRatio)); err != nil {
			return err
		}

		bid, err = bidRepo.Create(c, repoargs.CreateBid{
			ID:        uuid.New(),
			ListingID: listing.ID,
			BidderID:  args.BidderID,
			Amount:    args.Amount,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		raised, err := listingRepo.RaiseCurrentPrice(c, listing.ID, args.Amount)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if !raised {
			return domain.ErrBidTooLow
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("placing bid on listing %s: %w", args.ListingID, txErr)
	}
	return bid, nil
}

// checkBiddable проверки лота перед ставкой. Порядок проверок важен: он определяет какую ошибку увидит участник.
func checkBiddable(listing *domain.Listing, args PlaceBidArgs, now time.Time) error {
	switch {
	case listing.Ended(now):
		return domain.ErrAuctionEnded
	case listing.AIStatus != domain.AIStatusAccepted:
		return domain.ErrNotVerified
	case listing.SellerID == args.BidderID:
		return domain.ErrSelfBid
	case args.Amount.LessThanOrEqual(listing.CurrentPrice):
		return domain.ErrBidTooLow
	}
	return nil
}

// BidsForListing ставки по лоту, от наибольшей к наименьшей.
func (a *AuctionService) BidsForListing(ctx context.Context, listingID uuid.UUID) ([]domain.Bid, error) {
	bids, err := a.bidRepo.GetByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("getting bids of listing %s: %w", listingID, err)
	}
	return bids, nil
}

// BidsByUser ставки юзера, от новых к старым.
func (a *AuctionService) BidsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Bid, error) {
	bids, err := a.bidRepo.GetByBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting bids of user %s: %w", userID, err)
	}
	return bids, nil
}
