package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction выдает репозитории, работающие внутри одной транзакции. Экземпляр репозитория создается
// один раз на транзакцию. Не предназначен для использования из нескольких горутин.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	instances map[RepositoryName]Repository
	tx        pgx.Tx
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		instances: make(map[RepositoryName]Repository, len(factories)),
		tx:        tx,
	}
}

// Get возвращает репозиторий, привязанный к текущей транзакции, или ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.instances[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
	}
	repo := factory(t.tx)
	t.instances[name] = repo
	return repo, nil
}

// GetAs возвращает репозиторий транзакции с именем name, приведенный к типу T.
// Ошибки: ErrRepositoryNotRegistered, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s is %T", ErrInvalidRepositoryType, name, repo)
	}
	return res, nil
}
