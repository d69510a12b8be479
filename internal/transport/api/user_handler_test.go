package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/fsdevblog/groph-auction/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserHandlerTestSuite struct {
	handlerSuite
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) request(method, url, body string) *http.Response {
	args := testutils.RequestArgs{Router: s.router, Method: method, URL: url}
	if body != "" {
		args.Body = strings.NewReader(body)
	}
	return testutils.MakeRequest(args, testutils.WithJSON(), testutils.WithBearer(s.currentToken))
}

func (s *UserHandlerTestSuite) TestProvision_FromClaims() {
	s.mockUsers.EXPECT().Provision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args service.ProvisionUserArgs) (*domain.User, error) {
			s.Equal(s.currentUserID, args.ID)
			s.Equal("Jane Doe", args.Name)
			s.Equal("jane@example.com", args.Email)
			return &domain.User{ID: args.ID, Name: args.Name, Email: args.Email, Balance: decimal.Zero}, nil
		})

	resp := s.request(http.MethodPost, RouteGroup+ProvisionRoute, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body UserResponse
	s.decode(resp, &body)
	s.Equal(s.currentUserID, body.ID)
	s.Zero(body.Balance)
}

func (s *UserHandlerTestSuite) TestBalance() {
	s.mockLedger.EXPECT().GetBalance(gomock.Any(), s.currentUserID).Return(decimal.RequireFromString("12.34"), nil)

	resp := s.request(http.MethodGet, RouteGroup+BalanceRoute, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body BalanceResponse
	s.decode(resp, &body)
	s.InDelta(12.34, body.Balance, 0.0001)
}

func (s *UserHandlerTestSuite) TestBalance_UserNotProvisioned() {
	s.mockLedger.EXPECT().GetBalance(gomock.Any(), s.currentUserID).Return(decimal.Zero, domain.ErrRecordNotFound)

	resp := s.request(http.MethodGet, RouteGroup+BalanceRoute, "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *UserHandlerTestSuite) TestDeposit() {
	amount := decimal.RequireFromString("50")
	s.mockLedger.EXPECT().Deposit(gomock.Any(), s.currentUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, got decimal.Decimal) (*service.BalanceChange, error) {
			s.True(amount.Equal(got))
			return &service.BalanceChange{
				Balance: decimal.RequireFromString("150"),
				Transaction: domain.Transaction{
					ID:     uuid.New(),
					Amount: got,
					Type:   domain.TransactionTypeDeposit,
					Status: domain.TransactionStatusCompleted,
				},
			}, nil
		})

	resp := s.request(http.MethodPost, RouteGroup+DepositRoute, `{"amount":50}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body DepositResponse
	s.decode(resp, &body)
	s.InDelta(150.0, body.Balance, 0.0001)
	s.Equal(domain.TransactionTypeDeposit, body.Transaction.Type)
}

func (s *UserHandlerTestSuite) TestDeposit_Invalid() {
	resp := s.request(http.MethodPost, RouteGroup+DepositRoute, `{"amount":0}`)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.request(http.MethodPost, RouteGroup+DepositRoute, `not json`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("bad request", s.errorMessage(resp))
}

func (s *UserHandlerTestSuite) TestTransactionsBidsListings() {
	s.mockLedger.EXPECT().Transactions(gomock.Any(), s.currentUserID).Return([]domain.Transaction{
		{ID: uuid.New(), Amount: decimal.RequireFromString("-5"), Type: domain.TransactionTypeBid},
	}, nil)
	s.mockAuctions.EXPECT().BidsByUser(gomock.Any(), s.currentUserID).Return([]domain.Bid{}, nil)
	s.mockListings.EXPECT().BySeller(gomock.Any(), s.currentUserID).Return([]domain.Listing{
		{ID: uuid.New(), SellerID: s.currentUserID, BidsCount: 2},
	}, nil)

	resp := s.request(http.MethodGet, RouteGroup+TransactionsRoute, "")
	var transactions []TransactionResponse
	s.decode(resp, &transactions)
	s.Require().Len(transactions, 1)
	s.InDelta(-5.0, transactions[0].Amount, 0.0001)

	resp = s.request(http.MethodGet, RouteGroup+UserBidsRoute, "")
	var bids []BidResponse
	s.decode(resp, &bids)
	s.Empty(bids)

	resp = s.request(http.MethodGet, RouteGroup+UserListingsRoute, "")
	var listings []ListingResponse
	s.decode(resp, &listings)
	s.Require().Len(listings, 1)
	s.Equal(int64(2), listings[0].BidsCount)
}
