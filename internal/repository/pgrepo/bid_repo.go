package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bidColumns = `id, created_at, listing_id, bidder_id, amount`

type BidRepository struct {
	db uow.DBTX
}

func NewBidRepository(db uow.DBTX) *BidRepository {
	return &BidRepository{db: db}
}

func (b *BidRepository) Create(ctx context.Context, args repoargs.CreateBid) (*domain.Bid, error) {
	row := b.db.QueryRow(ctx, `
		INSERT INTO bids (id, listing_id, bidder_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bidColumns,
		args.ID, args.ListingID, args.BidderID, args.Amount,
	)
	bid, err := scanBid(row)
	if err != nil {
		return nil, convertErr(err, "creating bid on listing %s", args.ListingID)
	}
	return bid, nil
}

// GetByListing возвращает ставки по лоту от большей к меньшей. Первая - лидирующая.
func (b *BidRepository) GetByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Bid, error) {
	rows, err := b.db.Query(ctx, `
		SELECT `+bidColumns+` FROM bids WHERE listing_id = $1 ORDER BY amount DESC, created_at ASC`,
		listingID,
	)
	if err != nil {
		return nil, convertErr(err, "getting bids of listing %s", listingID)
	}
	bids, err := collectBids(rows)
	if err != nil {
		return nil, convertErr(err, "getting bids of listing %s", listingID)
	}
	return bids, nil
}

// GetByBidder возвращает ставки юзера от новых к старым.
func (b *BidRepository) GetByBidder(ctx context.Context, bidderID uuid.UUID) ([]domain.Bid, error) {
	rows, err := b.db.Query(ctx, `
		SELECT `+bidColumns+` FROM bids WHERE bidder_id = $1 ORDER BY created_at DESC`,
		bidderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting bids of user %s", bidderID)
	}
	bids, err := collectBids(rows)
	if err != nil {
		return nil, convertErr(err, "getting bids of user %s", bidderID)
	}
	return bids, nil
}

func collectBids(rows pgx.Rows) ([]domain.Bid, error) {
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, *bid)
	}
	return bids, rows.Err() //nolint:wrapcheck
}

func scanBid(row pgx.Row) (*domain.Bid, error) {
	var bid domain.Bid
	if err := row.Scan(&bid.ID, &bid.CreatedAt, &bid.ListingID, &bid.BidderID, &bid.Amount); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &bid, nil
}
