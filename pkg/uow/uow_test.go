package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
)

const testRepoName RepositoryName = "counter"

type counterRepo struct {
	db DBTX
}

func (r *counterRepo) Inc(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "UPDATE counters SET value = value + 1")
	return err //nolint:wrapcheck
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	uow  *UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock

	s.uow = NewUnitOfWork(mock)
	s.Require().NoError(s.uow.Register(testRepoName, func(db DBTX) Repository {
		return &counterRepo{db: db}
	}))
}

func (s *UnitOfWorkTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func (s *UnitOfWorkTestSuite) TestRegisterTwice() {
	err := s.uow.Register(testRepoName, func(db DBTX) Repository { return &counterRepo{db: db} })
	s.ErrorIs(err, ErrRepositoryAlreadyRegistered)

	err = s.uow.Register("nil factory", nil)
	s.ErrorIs(err, ErrNilRepositoryFactory)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*counterRepo](s.uow, testRepoName)
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetRepositoryAs[*counterRepo](s.uow, "unknown")
	s.ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetRepositoryAs[string](s.uow, testRepoName)
	s.ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *UnitOfWorkTestSuite) TestDo_Commit() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("UPDATE counters").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	err := s.uow.Do(s.T().Context(), func(ctx context.Context, tx TX) error {
		repo, repoErr := GetAs[*counterRepo](tx, testRepoName)
		if repoErr != nil {
			return repoErr
		}
		return repo.Inc(ctx)
	})
	s.NoError(err)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnError() {
	fnErr := errors.New("boom")

	s.mock.ExpectBegin()
	s.mock.ExpectExec("UPDATE counters").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectRollback()

	err := s.uow.Do(s.T().Context(), func(ctx context.Context, tx TX) error {
		repo, repoErr := GetAs[*counterRepo](tx, testRepoName)
		if repoErr != nil {
			return repoErr
		}
		if incErr := repo.Inc(ctx); incErr != nil {
			return incErr
		}
		return fnErr
	})
	s.ErrorIs(err, fnErr)
}

func (s *UnitOfWorkTestSuite) TestDo_BeginError() {
	beginErr := errors.New("no connection")
	s.mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err := s.uow.Do(s.T().Context(), func(context.Context, TX) error {
		called = true
		return nil
	})
	s.ErrorIs(err, beginErr)
	s.False(called)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnPanic() {
	s.mock.ExpectBegin()
	s.mock.ExpectRollback()

	s.Panics(func() {
		_ = s.uow.Do(s.T().Context(), func(context.Context, TX) error {
			panic("unexpected")
		})
	})
}

func (s *UnitOfWorkTestSuite) TestGetAs_NotRegistered() {
	s.mock.ExpectBegin()
	s.mock.ExpectRollback()

	err := s.uow.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		_, repoErr := GetAs[*counterRepo](tx, "unknown")
		return repoErr
	})
	s.ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UnitOfWorkTestSuite) TestGetAs_SameInstanceWithinTx() {
	s.mock.ExpectBegin()
	s.mock.ExpectCommit()

	err := s.uow.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		first, firstErr := GetAs[*counterRepo](tx, testRepoName)
		s.Require().NoError(firstErr)
		second, secondErr := GetAs[*counterRepo](tx, testRepoName)
		s.Require().NoError(secondErr)
		s.Same(first, second)

		_, typeErr := GetAs[string](tx, testRepoName)
		s.ErrorIs(typeErr, ErrInvalidRepositoryType)
		return nil
	})
	s.NoError(err)
}
