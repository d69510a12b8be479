package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/fsdevblog/groph-auction/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-auction/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ListingsHandlerTestSuite struct {
	handlerSuite
}

func TestListingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingsHandlerTestSuite))
}

func (s *ListingsHandlerTestSuite) request(method, url, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   reader,
	}, testutils.WithJSON(), testutils.WithBearer(s.currentToken))
}

func (s *ListingsHandlerTestSuite) TestUnauthorized() {
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + ListingsRoute,
	}, testutils.WithBearer("broken"))
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Unauthorized", s.errorMessage(resp))
}

func (s *ListingsHandlerTestSuite) TestCreate() {
	title := gofakeit.ProductName()
	s.mockListings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args service.CreateListingArgs) (*domain.Listing, error) {
			s.Equal(s.currentUserID, args.SellerID)
			s.True(args.StartingPrice.Equal(decimal.RequireFromString("25.5")))
			s.Equal(7, args.DurationDays)
			return &domain.Listing{
				ID:            uuid.New(),
				SellerID:      args.SellerID,
				Title:         args.Title,
				StartingPrice: args.StartingPrice,
				CurrentPrice:  args.StartingPrice,
				AIStatus:      domain.AIStatusPending,
			}, nil
		})

	resp := s.request(http.MethodPost, RouteGroup+ListingsRoute,
		`{"title":"`+title+`","description":"d","category":"electronics","condition":"used",`+
			`"startingPrice":25.50,"durationDays":7}`)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body ListingResponse
	s.decode(resp, &body)
	s.Equal(title, body.Title)
	s.Equal(domain.AIStatusPending, body.AIStatus)
	s.InDelta(25.5, body.CurrentPrice, 0.001)
}

func (s *ListingsHandlerTestSuite) TestCreate_Invalid() {
	cases := map[string]string{
		"three decimals": `{"title":"t","description":"d","category":"c","condition":"used",` +
			`"startingPrice":"10.001","durationDays":7}`,
		"zero price": `{"title":"t","description":"d","category":"c","condition":"used",` +
			`"startingPrice":0,"durationDays":7}`,
		"missing title": `{"description":"d","category":"c","condition":"used",` +
			`"startingPrice":10,"durationDays":7}`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			resp := s.request(http.MethodPost, RouteGroup+ListingsRoute, body)
			s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
			s.NotEmpty(s.errorMessage(resp))
		})
	}
}

func (s *ListingsHandlerTestSuite) TestIndex() {
	s.mockListings.EXPECT().Active(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error) {
			s.Equal("electronics", filter.Category)
			s.Equal("camera", filter.Search)
			s.Require().NotNil(filter.MinPrice)
			s.True(filter.MinPrice.Equal(decimal.RequireFromString("10.5")))
			s.Nil(filter.MaxPrice)
			return []domain.Listing{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		})

	resp := s.request(http.MethodGet, RouteGroup+ListingsRoute+"?category=electronics&search=camera&minPrice=10.5", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body []ListingResponse
	s.decode(resp, &body)
	s.Len(body, 2)
}

func (s *ListingsHandlerTestSuite) TestShow_ClosedWithWinner() {
	listingID := uuid.New()
	winner := domain.Bid{ID: uuid.New(), ListingID: listingID, Amount: decimal.RequireFromString("101")}
	s.mockListings.EXPECT().Get(gomock.Any(), listingID).Return(&domain.ListingDetails{
		Listing: domain.Listing{ID: listingID, AIStatus: domain.AIStatusAccepted},
		Bids:    []domain.Bid{winner},
		Phase:   domain.ListingPhaseClosed,
		Winner:  &winner,
	}, nil)

	resp := s.request(http.MethodGet, RouteGroup+"/listings/"+listingID.String(), "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body ListingDetailsResponse
	s.decode(resp, &body)
	s.Equal(domain.ListingPhaseClosed, body.Phase)
	s.Require().NotNil(body.Winner)
	s.Equal(winner.ID, body.Winner.ID)
}

func (s *ListingsHandlerTestSuite) TestPlaceBid() {
	listingID := uuid.New()
	s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args service.PlaceBidArgs) (*domain.Bid, error) {
			s.Equal(listingID, args.ListingID)
			s.Equal(s.currentUserID, args.BidderID)
			s.True(args.Amount.Equal(decimal.RequireFromString("50.01")))
			return &domain.Bid{
				ID:        uuid.New(),
				ListingID: listingID,
				BidderID:  args.BidderID,
				Amount:    args.Amount,
				CreatedAt: time.Now(),
			}, nil
		})

	resp := s.request(http.MethodPost, RouteGroup+"/listings/"+listingID.String()+"/bids", `{"amount":"50.01"}`)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body BidResponse
	s.decode(resp, &body)
	s.InDelta(50.01, body.Amount, 0.0001)
}

func (s *ListingsHandlerTestSuite) TestPlaceBid_Errors() {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "insufficient funds", err: domain.NewInsufficientFundsError(decimal.RequireFromString("5")),
			wantStatus: http.StatusPaymentRequired, wantMessage: "You need at least $5.00 in your wallet to place this bid"},
		{name: "self bid", err: domain.ErrSelfBid,
			wantStatus: http.StatusForbidden, wantMessage: domain.ErrSelfBid.Error()},
		{name: "ended", err: domain.ErrAuctionEnded,
			wantStatus: http.StatusConflict, wantMessage: domain.ErrAuctionEnded.Error()},
		{name: "not verified", err: domain.ErrNotVerified,
			wantStatus: http.StatusConflict, wantMessage: domain.ErrNotVerified.Error()},
		{name: "too low", err: domain.ErrBidTooLow,
			wantStatus: http.StatusConflict, wantMessage: domain.ErrBidTooLow.Error()},
		{name: "not found", err: domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound, wantMessage: "Product not found"},
		{name: "unknown", err: io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			listingID := uuid.New()
			s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			resp := s.request(http.MethodPost, RouteGroup+"/listings/"+listingID.String()+"/bids", `{"amount":10}`)
			s.Equal(tc.wantStatus, resp.StatusCode)
			s.Equal(tc.wantMessage, s.errorMessage(resp))
		})
	}
}

func (s *ListingsHandlerTestSuite) TestPlaceBid_InvalidAmount() {
	for _, body := range []string{`{"amount":-1}`, `{"amount":"1.234"}`, `{}`} {
		resp := s.request(http.MethodPost, RouteGroup+"/listings/"+uuid.NewString()+"/bids", body)
		s.Equal(http.StatusUnprocessableEntity, resp.StatusCode, body)
		s.Require().NoError(resp.Body.Close())
	}
}

func (s *ListingsHandlerTestSuite) TestVerify() {
	listingID := uuid.New()
	video := []byte("fake video bytes")

	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args service.VerifyArgs) (*service.VerificationResult, error) {
			s.Equal(listingID, args.ListingID)
			s.Equal(s.currentUserID, args.SellerID)
			s.Equal("camera.mp4", args.FileName)
			s.Equal("video/mp4", args.ContentType)
			s.Equal(int64(len(video)), args.Size)
			s.Equal("Vintage film camera", args.Description)

			content, err := io.ReadAll(args.Video)
			s.Require().NoError(err)
			s.Equal(video, content)
			return &service.VerificationResult{
				Status:            domain.AIStatusAccepted,
				Message:           "Product verified successfully!",
				AuctionRegistered: true,
			}, nil
		})

	body, contentType, err := testutils.MultipartVideo("camera.mp4", "video/mp4", video, "Vintage film camera")
	s.Require().NoError(err)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/listings/" + listingID.String() + "/verify",
		Body:   body,
	}, testutils.WithHeader("Content-Type", contentType), testutils.WithBearer(s.currentToken))
	s.Equal(http.StatusOK, resp.StatusCode)

	var result VerificationResponse
	s.decode(resp, &result)
	s.Equal(domain.AIStatusAccepted, result.Status)
	s.True(result.AuctionRegistered)
}

func (s *ListingsHandlerTestSuite) TestVerify_Errors() {
	listingID := uuid.New()
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyVerified)

	body, contentType, err := testutils.MultipartVideo("camera.mp4", "video/mp4", []byte("x"), "d")
	s.Require().NoError(err)
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/listings/" + listingID.String() + "/verify",
		Body:   body,
	}, testutils.WithHeader("Content-Type", contentType), testutils.WithBearer(s.currentToken))
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	// без файла.
	resp = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/listings/" + listingID.String() + "/verify",
		Body:   bytes.NewReader(nil),
	}, testutils.WithHeader("Content-Type", contentType), testutils.WithBearer(s.currentToken))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("video file is required", s.errorMessage(resp))
}

func (s *ListingsHandlerTestSuite) TestSellerCannotWriteVerdict() {
	own := uuid.New()
	body := `{"status":"accepted","message":"trust me"}`

	// статус не пишется ни через роут лота, ни через роут relay с токеном пользователя.
	resp := s.request(http.MethodPut, RouteGroup+"/listings/"+own.String()+"/status", body)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.request(http.MethodPut, RouteGroup+"/relay/listings/"+own.String()+"/status", body)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + "/relay/listings/" + own.String() + "/status",
		Body:   strings.NewReader(body),
	},
		testutils.WithJSON(),
		testutils.WithBearer(s.currentToken),
		testutils.WithHeader(middlewares.RelayTokenHeader, s.relayToken+"x"),
	)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}
