package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, name, email, balance`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert создает юзера с нулевым балансом, либо обновляет имя и email существующего. Баланс не трогает.
func (u *UserRepository) Upsert(ctx context.Context, args repoargs.UpsertUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = now()
		RETURNING `+userColumns,
		args.ID, args.Name, args.Email,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "upserting user %s", args.ID)
	}
	return user, nil
}

// FindByID ищет юзера по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user %s", id)
	}
	return user, nil
}

// FindByIDForUpdate то же что FindByID, но блокирует строку до конца транзакции.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user %s", id)
	}
	return user, nil
}

// AddBalance изменяет баланс на delta (может быть отрицательной) и возвращает новое значение.
func (u *UserRepository) AddBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.db.QueryRow(ctx, `
		UPDATE users SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING balance`,
		id, delta,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "changing balance of user %s", id)
	}
	return balance, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Name,
		&user.Email,
		&user.Balance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
