package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const defaultListingsLimit uint = 100

const listingColumns = `id, created_at, updated_at, seller_id, title, description, category, condition,
	starting_price, current_price, end_time, ai_status::text, ai_message, ai_verified, ai_verified_at`

type ListingRepository struct {
	db uow.DBTX
}

func NewListingRepository(db uow.DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create создает лот со статусом верификации pending и текущей ценой равной стартовой.
func (l *ListingRepository) Create(ctx context.Context, args repoargs.CreateListing) (*domain.Listing, error) {
	row := l.db.QueryRow(ctx, `
		INSERT INTO listings (id, seller_id, title, description, category, condition,
		                      starting_price, current_price, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8)
		RETURNING `+listingColumns,
		args.ID, args.SellerID, args.Title, args.Description, args.Category, args.Condition,
		args.StartingPrice, args.EndTime,
	)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "creating listing for seller %s", args.SellerID)
	}
	return listing, nil
}

// FindByID возвращает лот или domain.ErrRecordNotFound.
func (l *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	row := l.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "finding listing %s", id)
	}
	return listing, nil
}

// FindByIDForUpdate возвращает лот, блокируя строку до конца транзакции. Все ставки по одному лоту
// таким образом выполняются последовательно.
func (l *ListingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	row := l.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1 FOR UPDATE`, id)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "locking listing %s", id)
	}
	return listing, nil
}

// RaiseCurrentPrice выставляет текущую цену в amount только если она строго больше текущей.
// Возвращает false, если цена не изменилась.
func (l *ListingRepository) RaiseCurrentPrice(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	tag, err := l.db.Exec(ctx, `
		UPDATE listings SET current_price = $2, updated_at = now()
		WHERE id = $1 AND current_price < $2`,
		id, amount,
	)
	if err != nil {
		return false, convertErr(err, "raising current price of listing %s", id)
	}
	return tag.RowsAffected() == 1, nil
}

// SetAIStatus записывает вердикт верификации и возвращает обновленный лот.
func (l *ListingRepository) SetAIStatus(ctx context.Context, args repoargs.SetAIStatus) (*domain.Listing, error) {
	row := l.db.QueryRow(ctx, `
		UPDATE listings
		SET ai_status = $2::ai_status_type, ai_message = NULLIF($3, ''), ai_verified = $4,
		    ai_verified_at = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+listingColumns,
		args.ListingID, string(args.Status), args.Message, args.VerifiedAt != nil, args.VerifiedAt,
	)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "setting ai status of listing %s", args.ListingID)
	}
	return listing, nil
}

// MarkStaleProcessing переводит в статус error лоты, застрявшие в processing дольше чем до before.
func (l *ListingRepository) MarkStaleProcessing(
	ctx context.Context,
	before time.Time,
	message string,
) ([]domain.Listing, error) {
	rows, err := l.db.Query(ctx, `
		UPDATE listings
		SET ai_status = 'error', ai_message = $2, ai_verified = FALSE, ai_verified_at = NULL, updated_at = now()
		WHERE ai_status = 'processing' AND updated_at < $1
		RETURNING `+listingColumns,
		before, message,
	)
	if err != nil {
		return nil, convertErr(err, "marking stale listings")
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, convertErr(err, "marking stale listings")
	}
	return listings, nil
}

// GetActive возвращает прошедшие верификацию и не закончившиеся лоты, новые первыми.
func (l *ListingRepository) GetActive(
	ctx context.Context,
	filter repoargs.ListingFilter,
	now time.Time,
) ([]domain.Listing, error) {
	conditions := []string{"ai_status = 'accepted'", "end_time >= $1"}
	args := []any{now}

	addArg := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != "" {
		addArg("category = $%d", filter.Category)
	}
	if filter.Search != "" {
		addArg("(title ILIKE '%%' || $%[1]d || '%%' OR description ILIKE '%%' || $%[1]d || '%%')", filter.Search)
	}
	if filter.MinPrice != nil {
		addArg("current_price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		addArg("current_price <= $%d", *filter.MaxPrice)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListingsLimit
	}
	args = append(args, limit)

	query := `SELECT ` + listingColumns + ` FROM listings WHERE ` + strings.Join(conditions, " AND ") +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting active listings")
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, convertErr(err, "getting active listings")
	}
	return listings, nil
}

// GetBySeller возвращает лоты продавца с количеством ставок, от новых к старым.
func (l *ListingRepository) GetBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Listing, error) {
	rows, err := l.db.Query(ctx, `
		SELECT `+listingColumns+`, (SELECT count(*) FROM bids b WHERE b.listing_id = listings.id)
		FROM listings
		WHERE seller_id = $1
		ORDER BY created_at DESC`,
		sellerID,
	)
	if err != nil {
		return nil, convertErr(err, "getting listings of seller %s", sellerID)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var listing *domain.Listing
		var bidsCount int64
		listing, err = scanListing(rows, &bidsCount)
		if err != nil {
			return nil, convertErr(err, "scanning listing of seller %s", sellerID)
		}
		listing.BidsCount = bidsCount
		listings = append(listings, *listing)
	}
	if err = rows.Err(); err != nil {
		return nil, convertErr(err, "getting listings of seller %s", sellerID)
	}
	return listings, nil
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err() //nolint:wrapcheck
}

// scanListing сканирует колонки listingColumns и, при наличии, дополнительные колонки в extra.
func scanListing(row pgx.Row, extra ...any) (*domain.Listing, error) {
	var listing domain.Listing
	var status string
	var message *string

	dest := []any{
		&listing.ID,
		&listing.CreatedAt,
		&listing.UpdatedAt,
		&listing.SellerID,
		&listing.Title,
		&listing.Description,
		&listing.Category,
		&listing.Condition,
		&listing.StartingPrice,
		&listing.CurrentPrice,
		&listing.EndTime,
		&status,
		&message,
		&listing.AIVerified,
		&listing.AIVerifiedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err //nolint:wrapcheck
	}

	listing.AIStatus = domain.AIStatusType(status)
	if message != nil {
		listing.AIMessage = *message
	}
	return &listing, nil
}
