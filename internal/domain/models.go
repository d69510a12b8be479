package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Balance   decimal.Decimal
}

type Listing struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SellerID      uuid.UUID
	Title         string
	Description   string
	Category      string
	Condition     string
	StartingPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	EndTime       time.Time
	AIStatus      AIStatusType
	AIMessage     string
	AIVerified    bool
	AIVerifiedAt  *time.Time
	BidsCount     int64
}

// Phase вычисляет фазу лота относительно момента now.
func (l *Listing) Phase(now time.Time) ListingPhase {
	switch l.AIStatus {
	case AIStatusRejected, AIStatusError:
		return ListingPhaseRejected
	case AIStatusAccepted:
		if !l.Ended(now) {
			return ListingPhaseBiddable
		}
		return ListingPhaseClosed
	default:
		return ListingPhaseVerifying
	}
}

// Ended истина, если время аукциона вышло. Момент ровно в EndTime еще не считается окончанием.
func (l *Listing) Ended(now time.Time) bool {
	return l.EndTime.Before(now)
}

type Bid struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ListingID uuid.UUID
	BidderID  uuid.UUID
	Amount    decimal.Decimal
}

type Transaction struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Type      TransactionType
	Status    string
}

// ListingStatus представление статуса верификации лота для поллинга.
type ListingStatus struct {
	ListingID uuid.UUID
	Status    AIStatusType
	Message   string
	Timestamp *time.Time
}

// ListingDetails лот вместе со ставками (по убыванию суммы) и победителем, если аукцион закрыт.
type ListingDetails struct {
	Listing Listing
	Bids    []Bid
	Phase   ListingPhase
	Winner  *Bid
}
