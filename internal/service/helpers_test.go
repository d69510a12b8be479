package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service/mocks"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-auction/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// decimalMatcher сравнивает суммы по значению, а не по внутреннему представлению decimal.Decimal.
type decimalMatcher struct {
	expected decimal.Decimal
}

func decimalEq(expected decimal.Decimal) gomock.Matcher {
	return decimalMatcher{expected: expected}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.expected)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.expected)
}

// repoSuite общая часть сервисных тестов: моки unit of work, транзакции и всех репозиториев.
type repoSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockListingRepo     *mocks.MockListingRepository
	mockBidRepo         *mocks.MockBidRepository
	mockTransactionRepo *mocks.MockTransactionRepository
}

func (s *repoSuite) setupMocks() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockListingRepo = mocks.NewMockListingRepository(s.mockCtrl)
	s.mockBidRepo = mocks.NewMockBidRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:        s.mockUserRepo,
		repoargs.ListingRepoName:     s.mockListingRepo,
		repoargs.BidRepoName:         s.mockBidRepo,
		repoargs.TransactionRepoName: s.mockTransactionRepo,
	}
	for name, repo := range repos {
		// репозитории вне транзакции, запрашиваются при инициализации сервисов.
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		// те же моки внутри транзакции.
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
}

// expectTx настраивает мок uow.Do, выполняющий fn с моком транзакции.
func (s *repoSuite) expectTx() *gomock.Call {
	return s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
}
