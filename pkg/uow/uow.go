package uow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	conn         Conn
	mu           sync.RWMutex
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn Conn) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register регистрирует фабрику репозитория под именем name. Ошибки: ErrNilRepositoryFactory,
// ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilRepositoryFactory, name)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.repositories[name]; ok {
		return fmt.Errorf("%w: %s", ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. Если fn вернула ошибку (или запаниковала), транзакция
// откатывается, иначе - коммитится. Ошибки отката объединяются с исходной ошибкой.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, pgx.TxOptions{})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	var committed bool
	defer func() {
		if committed {
			return
		}
		// откатываем на отдельном контексте: исходный мог быть уже отменен, а соединение нужно вернуть в пул.
		rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
		if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			committed = true // повторно не откатываем
			panic(p)
		}
	}()

	if transErr := fn(ctx, NewTransaction(tx, u.snapshot())); transErr != nil {
		return transErr
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return commitErr //nolint:wrapcheck
	}
	committed = true
	return nil
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
}

func (u *UnitOfWork) snapshot() map[RepositoryName]RepositoryFactory {
	u.mu.RLock()
	defer u.mu.RUnlock()

	repos := make(map[RepositoryName]RepositoryFactory, len(u.repositories))
	for k, v := range u.repositories {
		repos[k] = v
	}
	return repos
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s is %T", ErrInvalidRepositoryType, name, repo)
	}
	return r, nil
}
