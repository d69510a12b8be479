package api

import (
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
)

type StatusResponse struct {
	ProductID uuid.UUID           `json:"productId"`
	Status    domain.AIStatusType `json:"status"`
	Message   string              `json:"message"`
	Timestamp *time.Time          `json:"timestamp"`
}

func newStatusResponse(st domain.ListingStatus) StatusResponse {
	return StatusResponse{
		ProductID: st.ListingID,
		Status:    st.Status,
		Message:   st.Message,
		Timestamp: st.Timestamp,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Balance:   u.Balance.InexactFloat64(),
		CreatedAt: u.CreatedAt,
	}
}

type ListingResponse struct {
	ID            uuid.UUID           `json:"id"`
	SellerID      uuid.UUID           `json:"sellerId"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Condition     string              `json:"condition"`
	StartingPrice float64             `json:"startingPrice"`
	CurrentPrice  float64             `json:"currentPrice"`
	EndTime       time.Time           `json:"endTime"`
	AIStatus      domain.AIStatusType `json:"aiStatus"`
	AIMessage     string              `json:"aiMessage"`
	AIVerified    bool                `json:"aiVerified"`
	AIVerifiedAt  *time.Time          `json:"aiVerifiedAt"`
	BidsCount     int64               `json:"bidsCount"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func newListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		SellerID:      l.SellerID,
		Title:         l.Title,
		Description:   l.Description,
		Category:      l.Category,
		Condition:     l.Condition,
		StartingPrice: l.StartingPrice.InexactFloat64(),
		CurrentPrice:  l.CurrentPrice.InexactFloat64(),
		EndTime:       l.EndTime,
		AIStatus:      l.AIStatus,
		AIMessage:     l.AIMessage,
		AIVerified:    l.AIVerified,
		AIVerifiedAt:  l.AIVerifiedAt,
		BidsCount:     l.BidsCount,
		CreatedAt:     l.CreatedAt,
	}
}

func newListingsResponse(listings []domain.Listing) []ListingResponse {
	response := make([]ListingResponse, len(listings))
	for i := range listings {
		response[i] = newListingResponse(&listings[i])
	}
	return response
}

type BidResponse struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"productId"`
	BidderID  uuid.UUID `json:"bidderId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

func newBidResponse(b *domain.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		ListingID: b.ListingID,
		BidderID:  b.BidderID,
		Amount:    b.Amount.InexactFloat64(),
		CreatedAt: b.CreatedAt,
	}
}

func newBidsResponse(bids []domain.Bid) []BidResponse {
	response := make([]BidResponse, len(bids))
	for i := range bids {
		response[i] = newBidResponse(&bids[i])
	}
	return response
}

type ListingDetailsResponse struct {
	Listing ListingResponse     `json:"listing"`
	Bids    []BidResponse       `json:"bids"`
	Phase   domain.ListingPhase `json:"phase"`
	Winner  *BidResponse        `json:"winner"`
}

type TransactionResponse struct {
	ID        uuid.UUID              `json:"id"`
	Amount    float64                `json:"amount"`
	Type      domain.TransactionType `json:"type"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Amount:    t.Amount.InexactFloat64(),
		Type:      t.Type,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
