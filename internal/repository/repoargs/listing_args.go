package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateListing struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	Title         string
	Description   string
	Category      string
	Condition     string
	StartingPrice decimal.Decimal
	EndTime       time.Time
}

type SetAIStatus struct {
	ListingID  uuid.UUID
	Status     domain.AIStatusType
	Message    string
	VerifiedAt *time.Time
}

// ListingFilter фильтр каталога активных лотов. Нулевые значения полей означают отсутствие фильтра.
type ListingFilter struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    uint
}
