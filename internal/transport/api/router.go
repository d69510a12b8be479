package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup               = "/api"
	ProductStatusRoute       = "/product-status/:id"
	ProductStatusStreamRoute = "/product-status/:id/stream"
	ProvisionRoute           = "/user/provision"
	BalanceRoute             = "/user/balance"
	DepositRoute             = "/user/balance/deposit"
	TransactionsRoute        = "/user/transactions"
	UserBidsRoute            = "/user/bids"
	UserListingsRoute        = "/user/listings"
	ListingsRoute            = "/listings"
	ListingRoute             = "/listings/:id"
	ListingBidsRoute         = "/listings/:id/bids"
	ListingVerifyRoute       = "/listings/:id/verify"
	RelayStatusRoute         = "/relay/listings/:id/status"
)

type RouterArgs struct {
	Logger               *logrus.Logger
	UserService          UserServicer
	LedgerService        LedgerServicer
	AuctionService       AuctionServicer
	ListingService       ListingServicer
	StatusService        StatusServicer
	VerificationService  VerificationServicer
	StatusSubscriber     StatusSubscriber
	JWTSecretKey         []byte
	RelayToken           string
	VerifyRequestTimeout time.Duration
	StreamTimeout        time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	statusHandler := NewStatusHandler(args.StatusService, args.StatusSubscriber, args.StreamTimeout)
	userHandler := NewUserHandler(args.UserService, args.LedgerService, args.AuctionService, args.ListingService)
	listingsHandler := NewListingsHandler(ListingsHandlerArgs{
		Listings:      args.ListingService,
		Auctions:      args.AuctionService,
		Verifications: args.VerificationService,
		VerifyTimeout: args.VerifyRequestTimeout,
	})

	api := r.Group(RouteGroup)

	api.GET(ProductStatusRoute, statusHandler.Show)
	if args.StatusSubscriber != nil {
		api.GET(ProductStatusStreamRoute, statusHandler.Stream)
	}
	if args.RelayToken != "" {
		relay := r.Group(RouteGroup, middlewares.RelayRequired(args.RelayToken))
		relay.PUT(RelayStatusRoute, statusHandler.Set)
	}

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(ProvisionRoute, userHandler.Provision)
	api.GET(BalanceRoute, userHandler.Balance)
	api.POST(DepositRoute, userHandler.Deposit)
	api.GET(TransactionsRoute, userHandler.Transactions)
	api.GET(UserBidsRoute, userHandler.Bids)
	api.GET(UserListingsRoute, userHandler.Listings)

	api.POST(ListingsRoute, listingsHandler.Create)
	api.GET(ListingsRoute, listingsHandler.Index)
	api.GET(ListingRoute, listingsHandler.Show)
	api.POST(ListingBidsRoute, listingsHandler.PlaceBid)
	api.POST(ListingVerifyRoute, listingsHandler.Verify)
	return r, nil
}
