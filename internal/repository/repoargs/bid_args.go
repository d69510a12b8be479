package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBid struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	BidderID  uuid.UUID
	Amount    decimal.Decimal
}
