package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService         *UserService
	LedgerService       *LedgerService
	AuctionService      *AuctionService
	StatusService       *StatusService
	ListingService      *ListingService
	VerificationService *VerificationService
}

type FactoryArgs struct {
	UOW             uow.UOW
	Publisher       StatusPublisher
	Verifier        VerifierClient
	VerifierTimeout time.Duration
	Logger          *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(args.UOW)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	auctionService, auctionServiceErr := NewAuctionService(args.UOW, ledgerService)
	if auctionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", auctionServiceErr.Error())
	}

	statusService, statusServiceErr := NewStatusService(args.UOW, args.Publisher, args.Logger)
	if statusServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", statusServiceErr.Error())
	}

	listingService, listingServiceErr := NewListingService(args.UOW)
	if listingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", listingServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		LedgerService:  ledgerService,
		AuctionService: auctionService,
		StatusService:  statusService,
		ListingService: listingService,
		VerificationService: NewVerificationService(
			args.UOW,
			statusService,
			args.Verifier,
			args.VerifierTimeout,
			args.Logger,
		),
	}, nil
}
