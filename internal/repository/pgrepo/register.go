package pgrepo

import (
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/pkg/errors"
)

// Register регистрирует фабрики всех postgres репозиториев в unit of work.
func Register(u uow.UOW) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(db uow.DBTX) uow.Repository {
			return NewUserRepository(db)
		},
		repoargs.ListingRepoName: func(db uow.DBTX) uow.Repository {
			return NewListingRepository(db)
		},
		repoargs.BidRepoName: func(db uow.DBTX) uow.Repository {
			return NewBidRepository(db)
		},
		repoargs.TransactionRepoName: func(db uow.DBTX) uow.Repository {
			return NewTransactionRepository(db)
		},
	}

	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return errors.Wrapf(err, "registering %s repository", name)
		}
	}
	return nil
}
